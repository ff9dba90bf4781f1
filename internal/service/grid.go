package service

import (
	"context"
	"log"
	"procurement-management-api/internal/common"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"

	"github.com/google/uuid"
)

// GridService drives the editable-grid lifecycle: it builds the baseline
// snapshot, and on save turns the edited snapshot into detected deletions
// (cascaded) plus a minimal set of validated partial updates.
type GridService struct {
	repos   *repo.Repositories
	cascade *CascadeService
	configs map[common.EntityKind]*GridConfig
}

func NewGridService(repos *repo.Repositories) (*GridService, error) {
	configs, err := GridConfigs()
	if err != nil {
		return nil, err
	}

	return &GridService{
		repos:   repos,
		cascade: NewCascadeService(repos),
		configs: configs,
	}, nil
}

func (s *GridService) Config(kind common.EntityKind) (*GridConfig, error) {
	cfg, ok := s.configs[kind]
	if !ok {
		return nil, ErrUnknownEntityKind
	}

	return cfg, nil
}

// BuildSnapshot materializes the current records of one entity kind into
// the tabular form the grid edits. FK-resolution diagnostics are returned
// alongside, they never abort the build.
func (s *GridService) BuildSnapshot(ctx context.Context, kind common.EntityKind) (*entity.Snapshot, []string, error) {
	switch kind {
	case common.KindBidding:
		biddings, err := s.repos.GetAllBiddings(ctx)
		if err != nil {
			return nil, nil, err
		}

		return BuildBiddingSnapshot(biddings), nil, nil

	case common.KindItem:
		items, err := s.repos.GetAllItems(ctx)
		if err != nil {
			return nil, nil, err
		}
		processNumbers, err := s.biddingProcessNumbers(ctx)
		if err != nil {
			return nil, nil, err
		}

		snapshot, diagnostics := BuildItemSnapshot(items, processNumbers)

		return snapshot, diagnostics, nil

	case common.KindSupplier:
		suppliers, err := s.repos.GetAllSuppliers(ctx)
		if err != nil {
			return nil, nil, err
		}

		return BuildSupplierSnapshot(suppliers), nil, nil

	case common.KindBidder:
		bidders, err := s.repos.GetAllBidders(ctx)
		if err != nil {
			return nil, nil, err
		}

		return BuildBidderSnapshot(bidders), nil, nil

	case common.KindQuote:
		quotes, err := s.repos.GetAllQuotes(ctx)
		if err != nil {
			return nil, nil, err
		}
		itemCodes, err := s.itemCodes(ctx)
		if err != nil {
			return nil, nil, err
		}
		supplierNames, err := s.supplierNames(ctx)
		if err != nil {
			return nil, nil, err
		}

		snapshot, diagnostics := BuildQuoteSnapshot(quotes, itemCodes, supplierNames)

		return snapshot, diagnostics, nil

	case common.KindBid:
		bids, err := s.repos.GetAllBids(ctx)
		if err != nil {
			return nil, nil, err
		}
		itemCodes, err := s.itemCodes(ctx)
		if err != nil {
			return nil, nil, err
		}
		processNumbers, err := s.biddingProcessNumbers(ctx)
		if err != nil {
			return nil, nil, err
		}
		bidderNames, err := s.bidderNames(ctx)
		if err != nil {
			return nil, nil, err
		}

		snapshot, diagnostics := BuildBidSnapshot(bids, itemCodes, processNumbers, bidderNames)

		return snapshot, diagnostics, nil
	}

	return nil, nil, ErrUnknownEntityKind
}

// SaveSnapshot reconciles the edited snapshot against the baseline:
// detected deletions cascade first, surviving rows are diffed and
// persisted, grid additions are reported back untouched.
func (s *GridService) SaveSnapshot(ctx context.Context, kind common.EntityKind, baseline, edited *entity.Snapshot) (*entity.GridSaveReport, error) {
	cfg, err := s.Config(kind)
	if err != nil {
		return nil, err
	}

	store, err := s.repos.Store(kind)
	if err != nil {
		return nil, err
	}

	deleted, added, err := DetectDeletions(baseline, edited)
	if err != nil {
		return nil, err
	}

	report := &entity.GridSaveReport{Kind: string(kind)}

	for _, id := range deleted {
		cascadeReport, err := s.cascade.DeleteWithCascade(ctx, kind, id)
		if err != nil {
			report.Failed++
			report.Rows = append(report.Rows, entity.RowOutcome{
				Id: id.String(), Status: entity.RowFailed, Reason: err.Error(),
			})
			continue
		}
		for _, failure := range cascadeReport.Failures {
			log.Printf("cascade of %s %s: %s", kind, id, failure)
		}
		report.Deleted++
		report.Rows = append(report.Rows, entity.RowOutcome{Id: id.String(), Status: entity.RowDeleted})
	}

	outcomes, err := ReconcileSnapshots(ctx, store, cfg, baseline, edited)
	if err != nil {
		return nil, err
	}
	for _, outcome := range outcomes {
		switch outcome.Status {
		case entity.RowUpdated:
			report.Updated++
		case entity.RowUnchanged:
			report.Unchanged++
		case entity.RowFailed:
			report.Failed++
		}
	}
	report.Rows = append(report.Rows, outcomes...)

	for _, id := range added {
		report.Rows = append(report.Rows, entity.RowOutcome{
			Id:     id.String(),
			Status: entity.RowIgnored,
			Reason: "new records are created through the creation flow, not the grid",
		})
	}

	return report, nil
}

func (s *GridService) DeleteWithCascade(ctx context.Context, kind common.EntityKind, id uuid.UUID) (*entity.CascadeReport, error) {
	return s.cascade.DeleteWithCascade(ctx, kind, id)
}

func (s *GridService) biddingProcessNumbers(ctx context.Context) (map[uuid.UUID]string, error) {
	biddings, err := s.repos.GetAllBiddings(ctx)
	if err != nil {
		return nil, err
	}

	numbers := make(map[uuid.UUID]string, len(biddings))
	for _, bidding := range biddings {
		numbers[bidding.Id] = bidding.ProcessNumber
	}

	return numbers, nil
}

func (s *GridService) itemCodes(ctx context.Context) (map[uuid.UUID]string, error) {
	items, err := s.repos.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}

	codes := make(map[uuid.UUID]string, len(items))
	for _, item := range items {
		codes[item.Id] = item.Code
	}

	return codes, nil
}

func (s *GridService) supplierNames(ctx context.Context) (map[uuid.UUID]string, error) {
	suppliers, err := s.repos.GetAllSuppliers(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(suppliers))
	for _, supplier := range suppliers {
		names[supplier.Id] = supplier.Name
	}

	return names, nil
}

func (s *GridService) bidderNames(ctx context.Context) (map[uuid.UUID]string, error) {
	bidders, err := s.repos.GetAllBidders(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(bidders))
	for _, bidder := range bidders {
		names[bidder.Id] = bidder.Name
	}

	return names, nil
}
