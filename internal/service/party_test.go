package service_test

import (
	"context"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/service"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateSupplierAndList(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewPartyService(f.repos)
	website := "https://initech.example.com"

	supplier, err := svc.CreateSupplier(context.Background(), &entity.CreateSupplierInput{
		Name:    "Initech",
		Website: &website,
	})
	require.NoError(t, err)
	require.Equal(t, "Initech", supplier.Name)
	require.Equal(t, website, supplier.Website)

	suppliers, err := svc.GetSuppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 2)
}

func TestCreateSupplierRejectsDuplicateName(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewPartyService(f.repos)

	_, err := svc.CreateSupplier(context.Background(), &entity.CreateSupplierInput{Name: "Acme"})
	require.ErrorIs(t, err, service.ErrSupplierNameTaken)

	suppliers, err := svc.GetSuppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
}

func TestCreateBidderRejectsDuplicateName(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewPartyService(f.repos)

	_, err := svc.CreateBidder(context.Background(), &entity.CreateBidderInput{Name: "Globex"})
	require.ErrorIs(t, err, service.ErrBidderNameTaken)

	bidders, err := svc.GetBidders(context.Background())
	require.NoError(t, err)
	require.Len(t, bidders, 1)
}

func TestCreateBidderWithoutContacts(t *testing.T) {
	f := newCascadeFixture()
	svc := service.NewPartyService(f.repos)

	bidder, err := svc.CreateBidder(context.Background(), &entity.CreateBidderInput{Name: "Hooli"})
	require.NoError(t, err)
	require.Equal(t, "Hooli", bidder.Name)
	require.Empty(t, bidder.Website)
	require.Empty(t, bidder.Email)

	bidders, err := svc.GetBidders(context.Background())
	require.NoError(t, err)
	require.Len(t, bidders, 2)
}
