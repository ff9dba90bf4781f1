package service_test

import (
	"context"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/service"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newGridService(t *testing.T, f *cascadeFixture) *service.GridService {
	t.Helper()
	svc, err := service.NewGridService(f.repos)
	require.NoError(t, err)
	return svc
}

func TestGridBuildSnapshotJoinsReferences(t *testing.T) {
	f := newCascadeFixture()
	svc := newGridService(t, f)

	snapshot, diagnostics, err := svc.BuildSnapshot(context.Background(), common.KindBid)
	require.NoError(t, err)
	require.Empty(t, diagnostics)
	require.Len(t, snapshot.Rows, 2)

	row := snapshot.Rows[f.bidIds[0]]
	require.Equal(t, "PA-2026-001", row["bidding"].Text())
	require.Equal(t, "Globex", row["bidder"].Text())
}

func TestGridBuildSnapshotUnknownKind(t *testing.T) {
	f := newCascadeFixture()
	svc := newGridService(t, f)

	_, _, err := svc.BuildSnapshot(context.Background(), common.EntityKind("warehouse"))
	require.ErrorIs(t, err, service.ErrUnknownEntityKind)
}

func TestGridSaveSnapshotFullRoundTrip(t *testing.T) {
	f := newCascadeFixture()
	f.suppliers.suppliers = append(f.suppliers.suppliers, entity.Supplier{Id: uuid.New(), Name: "Initech"})
	svc := newGridService(t, f)

	renamedId := f.suppliers.suppliers[0].Id
	removedId := f.suppliers.suppliers[1].Id
	addedId := uuid.New()

	baseline, _, err := svc.BuildSnapshot(context.Background(), common.KindSupplier)
	require.NoError(t, err)

	edited := entity.NewSnapshot(common.KindSupplier, baseline.Columns)
	renamedRow := baseline.Rows[renamedId].Clone()
	renamedRow["name"] = entity.TextValue("Acme Industrial")
	edited.Put(renamedId, renamedRow)
	// removedId stays out: a deletion. addedId is new: ignored.
	edited.Put(addedId, entity.Row{"name": entity.TextValue("Newcomer")})

	report, err := svc.SaveSnapshot(context.Background(), common.KindSupplier, baseline, edited)
	require.NoError(t, err)

	require.Equal(t, 1, report.Updated)
	require.Equal(t, 1, report.Deleted)
	require.Equal(t, 0, report.Failed)

	require.Equal(t, "Acme Industrial", f.suppliers.updated[renamedId]["name"])
	require.Equal(t, []uuid.UUID{removedId}, f.suppliers.deleted)

	byId := make(map[string]entity.RowOutcome)
	for _, row := range report.Rows {
		byId[row.Id] = row
	}
	require.Equal(t, entity.RowUpdated, byId[renamedId.String()].Status)
	require.Equal(t, entity.RowDeleted, byId[removedId.String()].Status)
	require.Equal(t, entity.RowIgnored, byId[addedId.String()].Status)
	require.NotContains(t, f.suppliers.updated, addedId)
}

func TestGridSaveSnapshotDeletionCascades(t *testing.T) {
	f := newCascadeFixture()
	svc := newGridService(t, f)

	baseline, _, err := svc.BuildSnapshot(context.Background(), common.KindBidding)
	require.NoError(t, err)
	require.Len(t, baseline.Rows, 2)

	// Drop the first bidding from the grid, keep the second untouched.
	edited := entity.NewSnapshot(common.KindBidding, baseline.Columns)
	edited.Put(f.otherId, baseline.Rows[f.otherId].Clone())

	report, err := svc.SaveSnapshot(context.Background(), common.KindBidding, baseline, edited)
	require.NoError(t, err)
	require.Equal(t, 1, report.Deleted)
	require.Equal(t, 1, report.Unchanged)

	require.Equal(t, []uuid.UUID{f.biddingId}, f.biddings.deleted)
	require.ElementsMatch(t, f.itemIds, f.items.deleted)
	require.ElementsMatch(t, f.quoteIds, f.quotes.deleted)
	require.ElementsMatch(t, f.bidIds, f.bids.deleted)
}

func TestGridConfigsAreInternallyConsistent(t *testing.T) {
	configs, err := service.GridConfigs()
	require.NoError(t, err)

	for _, kind := range []common.EntityKind{
		common.KindBidding, common.KindItem, common.KindSupplier,
		common.KindBidder, common.KindQuote, common.KindBid,
	} {
		require.Contains(t, configs, kind)
	}
}
