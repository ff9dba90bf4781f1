package service_test

import (
	"context"
	"procurement-management-api/internal/entity"
	"procurement-management-api/internal/repo"
	"procurement-management-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// mockStore implements repo.RecordStore and records every call.
type mockStore struct {
	updates    map[uuid.UUID]repo.Fields
	deletes    []uuid.UUID
	UpdateFunc func(ctx context.Context, id uuid.UUID, fields repo.Fields) error
}

func newMockStore() *mockStore {
	return &mockStore{updates: make(map[uuid.UUID]repo.Fields)}
}

func (m *mockStore) Update(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	m.updates[id] = fields
	return nil
}

func (m *mockStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.deletes = append(m.deletes, id)
	return nil
}

type mockBiddingRepo struct {
	biddings  []entity.Bidding
	updated   map[uuid.UUID]repo.Fields
	deleted   []uuid.UUID
	deleteErr error
}

func (m *mockBiddingRepo) CreateBidding(ctx context.Context, input *entity.CreateBiddingInput) (uuid.UUID, error) {
	id := uuid.New()
	m.biddings = append(m.biddings, entity.Bidding{
		Id: id, City: input.City, Date: input.Date,
		Mode: input.Mode, ProcessNumber: input.ProcessNumber,
	})
	return id, nil
}

func (m *mockBiddingRepo) GetBiddingById(ctx context.Context, id uuid.UUID) (*entity.Bidding, error) {
	for i := range m.biddings {
		if m.biddings[i].Id == id {
			return &m.biddings[i], nil
		}
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockBiddingRepo) GetBiddings(ctx context.Context, pg *entity.PaginationInput) ([]entity.Bidding, error) {
	return m.biddings, nil
}

func (m *mockBiddingRepo) GetAllBiddings(ctx context.Context) ([]entity.Bidding, error) {
	return m.biddings, nil
}

func (m *mockBiddingRepo) UpdateBiddingById(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]repo.Fields)
	}
	m.updated[id] = fields
	return nil
}

func (m *mockBiddingRepo) DeleteBiddingById(ctx context.Context, id uuid.UUID) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockItemRepo struct {
	items   []entity.Item
	updated map[uuid.UUID]repo.Fields
	deleted []uuid.UUID
}

func (m *mockItemRepo) CreateItem(ctx context.Context, input *entity.CreateItemInput) (uuid.UUID, error) {
	id := uuid.New()
	biddingId, _ := uuid.Parse(input.BiddingId)
	m.items = append(m.items, entity.Item{
		Id: id, BiddingId: biddingId, Code: input.Code, Name: input.Name,
		Description: input.Description, Unit: input.Unit,
		Quantity: input.Quantity, Notes: input.Notes,
	})
	return id, nil
}

func (m *mockItemRepo) GetItemById(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	for i := range m.items {
		if m.items[i].Id == id {
			return &m.items[i], nil
		}
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockItemRepo) GetAllItems(ctx context.Context) ([]entity.Item, error) {
	return m.items, nil
}

func (m *mockItemRepo) GetItemsByBiddingId(ctx context.Context, biddingId uuid.UUID) ([]entity.Item, error) {
	out := make([]entity.Item, 0)
	for _, item := range m.items {
		if item.BiddingId == biddingId {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockItemRepo) UpdateItemById(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]repo.Fields)
	}
	m.updated[id] = fields
	return nil
}

func (m *mockItemRepo) DeleteItemById(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockSupplierRepo struct {
	suppliers []entity.Supplier
	updated   map[uuid.UUID]repo.Fields
	deleted   []uuid.UUID
}

func (m *mockSupplierRepo) CreateSupplier(ctx context.Context, input *entity.CreateSupplierInput) (uuid.UUID, error) {
	id := uuid.New()
	m.suppliers = append(m.suppliers, entity.Supplier{
		Id: id, Name: input.Name, Website: input.Website,
		Email: input.Email, Phone: input.Phone, Description: input.Description,
	})
	return id, nil
}

func (m *mockSupplierRepo) GetSupplierById(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	for i := range m.suppliers {
		if m.suppliers[i].Id == id {
			return &m.suppliers[i], nil
		}
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockSupplierRepo) GetAllSuppliers(ctx context.Context) ([]entity.Supplier, error) {
	return m.suppliers, nil
}

func (m *mockSupplierRepo) UpdateSupplierById(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]repo.Fields)
	}
	m.updated[id] = fields
	return nil
}

func (m *mockSupplierRepo) DeleteSupplierById(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockBidderRepo struct {
	bidders []entity.Bidder
	updated map[uuid.UUID]repo.Fields
	deleted []uuid.UUID
}

func (m *mockBidderRepo) CreateBidder(ctx context.Context, input *entity.CreateBidderInput) (uuid.UUID, error) {
	id := uuid.New()
	m.bidders = append(m.bidders, entity.Bidder{
		Id: id, Name: input.Name, Website: input.Website,
		Email: input.Email, Phone: input.Phone, Description: input.Description,
	})
	return id, nil
}

func (m *mockBidderRepo) GetBidderById(ctx context.Context, id uuid.UUID) (*entity.Bidder, error) {
	for i := range m.bidders {
		if m.bidders[i].Id == id {
			return &m.bidders[i], nil
		}
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockBidderRepo) GetAllBidders(ctx context.Context) ([]entity.Bidder, error) {
	return m.bidders, nil
}

func (m *mockBidderRepo) UpdateBidderById(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]repo.Fields)
	}
	m.updated[id] = fields
	return nil
}

func (m *mockBidderRepo) DeleteBidderById(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type mockQuoteRepo struct {
	quotes       []entity.Quote
	updated      map[uuid.UUID]repo.Fields
	deleted      []uuid.UUID
	deleteErrFor map[uuid.UUID]error
}

func (m *mockQuoteRepo) CreateQuote(ctx context.Context, input *entity.CreateQuoteInput) (uuid.UUID, error) {
	id := uuid.New()
	itemId, _ := uuid.Parse(input.ItemId)
	supplierId, _ := uuid.Parse(input.SupplierId)
	m.quotes = append(m.quotes, entity.Quote{
		Id: id, ItemId: itemId, SupplierId: supplierId,
		BasePrice: input.BasePrice, Freight: input.Freight,
		AdditionalCosts: input.AdditionalCosts, TaxPct: input.TaxPct,
		MarginPct: input.MarginPct, Notes: input.Notes, Link: input.Link,
	})
	return id, nil
}

func (m *mockQuoteRepo) GetQuoteById(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	for i := range m.quotes {
		if m.quotes[i].Id == id {
			return &m.quotes[i], nil
		}
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockQuoteRepo) GetAllQuotes(ctx context.Context) ([]entity.Quote, error) {
	return m.quotes, nil
}

func (m *mockQuoteRepo) GetQuotesByItemId(ctx context.Context, itemId uuid.UUID) ([]entity.Quote, error) {
	out := make([]entity.Quote, 0)
	for _, quote := range m.quotes {
		if quote.ItemId == itemId {
			out = append(out, quote)
		}
	}
	return out, nil
}

func (m *mockQuoteRepo) GetQuotesBySupplierId(ctx context.Context, supplierId uuid.UUID) ([]entity.Quote, error) {
	out := make([]entity.Quote, 0)
	for _, quote := range m.quotes {
		if quote.SupplierId == supplierId {
			out = append(out, quote)
		}
	}
	return out, nil
}

func (m *mockQuoteRepo) UpdateQuoteById(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]repo.Fields)
	}
	m.updated[id] = fields
	return nil
}

func (m *mockQuoteRepo) DeleteQuoteById(ctx context.Context, id uuid.UUID) error {
	if err, ok := m.deleteErrFor[id]; ok {
		return err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockBidRepo struct {
	bids    []entity.Bid
	updated map[uuid.UUID]repo.Fields
	deleted []uuid.UUID
}

func (m *mockBidRepo) CreateBid(ctx context.Context, input *entity.CreateBidInput) (uuid.UUID, error) {
	id := uuid.New()
	itemId, _ := uuid.Parse(input.ItemId)
	biddingId, _ := uuid.Parse(input.BiddingId)
	var bidderId *uuid.UUID
	if input.BidderId != nil {
		parsed, _ := uuid.Parse(*input.BidderId)
		bidderId = &parsed
	}
	m.bids = append(m.bids, entity.Bid{
		Id: id, ItemId: itemId, BiddingId: biddingId, BidderId: bidderId,
		Price: input.Price, Notes: input.Notes,
	})
	return id, nil
}

func (m *mockBidRepo) GetBidById(ctx context.Context, id uuid.UUID) (*entity.Bid, error) {
	for i := range m.bids {
		if m.bids[i].Id == id {
			return &m.bids[i], nil
		}
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockBidRepo) GetAllBids(ctx context.Context) ([]entity.Bid, error) {
	return m.bids, nil
}

func (m *mockBidRepo) GetBidsByItemId(ctx context.Context, itemId uuid.UUID) ([]entity.Bid, error) {
	out := make([]entity.Bid, 0)
	for _, bid := range m.bids {
		if bid.ItemId == itemId {
			out = append(out, bid)
		}
	}
	return out, nil
}

func (m *mockBidRepo) GetBidsByBidderId(ctx context.Context, bidderId uuid.UUID) ([]entity.Bid, error) {
	out := make([]entity.Bid, 0)
	for _, bid := range m.bids {
		if bid.BidderId != nil && *bid.BidderId == bidderId {
			out = append(out, bid)
		}
	}
	return out, nil
}

func (m *mockBidRepo) GetBidsByBiddingId(ctx context.Context, biddingId uuid.UUID) ([]entity.Bid, error) {
	out := make([]entity.Bid, 0)
	for _, bid := range m.bids {
		if bid.BiddingId == biddingId {
			out = append(out, bid)
		}
	}
	return out, nil
}

func (m *mockBidRepo) UpdateBidById(ctx context.Context, id uuid.UUID, fields repo.Fields) error {
	if m.updated == nil {
		m.updated = make(map[uuid.UUID]repo.Fields)
	}
	m.updated[id] = fields
	return nil
}

func (m *mockBidRepo) DeleteBidById(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	return nil
}
