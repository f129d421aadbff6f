package repository

import (
	"context"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
)

// BalanceLedger defines balance persistence.
// A user without a stored row has domain.DefaultBalance.
type BalanceLedger interface {
	GetBalance(ctx context.Context, userID string) (int, error)
	// AdjustBalance applies delta and returns the new balance.
	// It returns domain.ErrInsufficientFunds if the result would be negative.
	AdjustBalance(ctx context.Context, userID string, delta int) (int, error)
	SetBalance(ctx context.Context, userID string, balance int) error
}

// InventoryStore defines item ownership persistence.
type InventoryStore interface {
	AddItem(ctx context.Context, ownerID string, fields domain.ItemFields) (int64, error)
	GetItem(ctx context.Context, itemID int64) (*domain.InventoryItem, error)
	GetOwner(ctx context.Context, itemID int64) (string, error)
	// TransferOwnership moves the item to newOwner only if it is still owned by
	// expectedOwner, otherwise it returns domain.ErrConflict.
	TransferOwnership(ctx context.Context, itemID int64, expectedOwner, newOwner string) error
	GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error)
}

// ListingStore defines market listing persistence.
type ListingStore interface {
	CreateListing(ctx context.Context, sellerID string, itemID int64, price int, snapshot domain.ListingSnapshot) (int64, error)
	GetListingByID(ctx context.Context, listingID int64) (*domain.MarketListing, error)
	// RemoveListingIfPresent deletes the listing and reports whether this call removed it.
	RemoveListingIfPresent(ctx context.Context, listingID int64) (bool, error)
	RemoveListingOwnedBy(ctx context.Context, listingID int64, sellerID string) error
	GetActiveListings(ctx context.Context) ([]domain.MarketListing, error)
}

// Marketplace defines the interface for marketplace persistence.
// Reads outside a unit of work go through it directly; every mutation runs inside BeginTx.
type Marketplace interface {
	GetActiveListings(ctx context.Context) ([]domain.MarketListing, error)
	GetItemsByOwner(ctx context.Context, ownerID string) ([]domain.InventoryItem, error)
	GetBalance(ctx context.Context, userID string) (int, error)
	BeginTx(ctx context.Context) (MarketplaceTx, error)
}

// MarketplaceTx is a single unit of work spanning the ledger, inventory and listings.
type MarketplaceTx interface {
	Tx
	BalanceLedger
	InventoryStore
	ListingStore
}
