package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
	"github.com/osse101/BoobaMarket_Go/internal/repository"
)

// Service defines the interface for marketplace operations.
// Every mutating call runs as a single unit of work and takes the caller's
// identity as an explicit argument.
type Service interface {
	CreateListing(ctx context.Context, sellerID string, inventoryItemID int64, price int) (int64, error)
	ListActive(ctx context.Context) ([]domain.MarketListing, error)
	Buy(ctx context.Context, buyerID string, listingID int64) (*domain.BuyResult, error)
	Cancel(ctx context.Context, requesterID string, listingID int64) error
	AddInventoryItem(ctx context.Context, ownerID string, fields domain.ItemFields) (int64, error)
	SetBalance(ctx context.Context, userID string, balance int) error
	GetInventory(ctx context.Context, userID string) (*domain.Inventory, error)
	GetBalance(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo repository.Marketplace
}

// NewService creates a new marketplace service
func NewService(repo repository.Marketplace) Service {
	return &service{repo: repo}
}

func (s *service) ListActive(ctx context.Context) ([]domain.MarketListing, error) {
	listings, err := s.repo.GetActiveListings(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(ErrMsgGetListingsFailed, "error", err)
		return nil, storageErr(ErrMsgGetListingsFailed, err)
	}
	return listings, nil
}

// storageErr passes business outcomes reported by the store through untouched
// and marks everything else as a persistence failure.
func storageErr(msg string, err error) error {
	if domain.IsExpected(err) || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrPersistence) {
		return err
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrPersistence, msg, err)
}

// inTx runs fn inside a unit of work and commits when fn succeeds.
func (s *service) inTx(ctx context.Context, fn func(tx repository.MarketplaceTx) error) error {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return storageErr(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return storageErr(ErrMsgCommitTransactionFailed, err)
	}
	return nil
}
