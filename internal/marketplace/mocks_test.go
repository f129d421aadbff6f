package marketplace

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/repository"
)

// MockRepository implements repository.Marketplace for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketListing), args.Error(1)
}

func (m *MockRepository) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.MarketplaceTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MarketplaceTx), args.Error(1)
}

// MockTx implements repository.MarketplaceTx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) GetBalance(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) AdjustBalance(ctx context.Context, userID string, delta int) (int, error) {
	args := m.Called(ctx, userID, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) SetBalance(ctx context.Context, userID string, balance int) error {
	args := m.Called(ctx, userID, balance)
	return args.Error(0)
}

func (m *MockTx) AddItem(ctx context.Context, ownerID string, fields domain.ItemFields) (int64, error) {
	args := m.Called(ctx, ownerID, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) GetItem(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) GetOwner(ctx context.Context, itemID int64) (string, error) {
	args := m.Called(ctx, itemID)
	return args.String(0), args.Error(1)
}

func (m *MockTx) TransferOwnership(ctx context.Context, itemID int64, expectedOwner, newOwner string) error {
	args := m.Called(ctx, itemID, expectedOwner, newOwner)
	return args.Error(0)
}

func (m *MockTx) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockTx) CreateListing(ctx context.Context, sellerID string, itemID int64, price int, snapshot domain.ListingSnapshot) (int64, error) {
	args := m.Called(ctx, sellerID, itemID, price, snapshot)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTx) GetListingByID(ctx context.Context, listingID int64) (*domain.MarketListing, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketListing), args.Error(1)
}

func (m *MockTx) RemoveListingIfPresent(ctx context.Context, listingID int64) (bool, error) {
	args := m.Called(ctx, listingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTx) RemoveListingOwnedBy(ctx context.Context, listingID int64, sellerID string) error {
	args := m.Called(ctx, listingID, sellerID)
	return args.Error(0)
}

func (m *MockTx) GetActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketListing), args.Error(1)
}

// Ensure mocks implement the repository interfaces
var (
	_ repository.Marketplace   = (*MockRepository)(nil)
	_ repository.MarketplaceTx = (*MockTx)(nil)
)
