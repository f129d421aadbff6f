package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/repository"
)

// MarketplaceRepository implements repository.Marketplace for PostgreSQL
type MarketplaceRepository struct {
	db *pgxpool.Pool
}

// NewMarketplaceRepository creates a new MarketplaceRepository
func NewMarketplaceRepository(db *pgxpool.Pool) *MarketplaceRepository {
	return &MarketplaceRepository{db: db}
}

// BeginTx starts a READ COMMITTED transaction. Contended rows are serialized
// with explicit row locks and conditional writes.
func (r *MarketplaceRepository) BeginTx(ctx context.Context) (repository.MarketplaceTx, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &MarketplaceTx{tx: tx}, nil
}

// GetActiveListings returns all listings, newest first
func (r *MarketplaceRepository) GetActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	return getActiveListings(ctx, r.db)
}

// GetItemsByOwner returns a user's items, most recently acquired first
func (r *MarketplaceRepository) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	return getItemsByOwner(ctx, r.db, ownerID)
}

// GetBalance returns the stored balance or the default for unknown users
func (r *MarketplaceRepository) GetBalance(ctx context.Context, userID string) (int, error) {
	return getBalance(ctx, r.db, userID)
}

// MarketplaceTx implements repository.MarketplaceTx
type MarketplaceTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *MarketplaceTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *MarketplaceTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *MarketplaceTx) GetBalance(ctx context.Context, userID string) (int, error) {
	return getBalance(ctx, t.tx, userID)
}

func (t *MarketplaceTx) AdjustBalance(ctx context.Context, userID string, delta int) (int, error) {
	return adjustBalance(ctx, t.tx, userID, delta)
}

func (t *MarketplaceTx) SetBalance(ctx context.Context, userID string, balance int) error {
	return setBalance(ctx, t.tx, userID, balance)
}

func (t *MarketplaceTx) AddItem(ctx context.Context, ownerID string, fields domain.ItemFields) (int64, error) {
	return addItem(ctx, t.tx, ownerID, fields)
}

// GetItem reads and locks the item row until the transaction ends
func (t *MarketplaceTx) GetItem(ctx context.Context, itemID int64) (*domain.InventoryItem, error) {
	return getItem(ctx, t.tx, itemID, true)
}

func (t *MarketplaceTx) GetOwner(ctx context.Context, itemID int64) (string, error) {
	return getOwner(ctx, t.tx, itemID)
}

func (t *MarketplaceTx) TransferOwnership(ctx context.Context, itemID int64, expectedOwner, newOwner string) error {
	return transferOwnership(ctx, t.tx, itemID, expectedOwner, newOwner)
}

func (t *MarketplaceTx) GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error) {
	return getItemsByOwner(ctx, t.tx, ownerID)
}

func (t *MarketplaceTx) CreateListing(ctx context.Context, sellerID string, itemID int64, price int, snapshot domain.ListingSnapshot) (int64, error) {
	return createListing(ctx, t.tx, sellerID, itemID, price, snapshot)
}

// GetListingByID reads and locks the listing row until the transaction ends
func (t *MarketplaceTx) GetListingByID(ctx context.Context, listingID int64) (*domain.MarketListing, error) {
	return getListingByID(ctx, t.tx, listingID, true)
}

func (t *MarketplaceTx) RemoveListingIfPresent(ctx context.Context, listingID int64) (bool, error) {
	return removeListingIfPresent(ctx, t.tx, listingID)
}

func (t *MarketplaceTx) RemoveListingOwnedBy(ctx context.Context, listingID int64, sellerID string) error {
	return removeListingOwnedBy(ctx, t.tx, listingID, sellerID)
}

func (t *MarketplaceTx) GetActiveListings(ctx context.Context) ([]domain.MarketListing, error) {
	return getActiveListings(ctx, t.tx)
}
