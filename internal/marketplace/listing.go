package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
	"github.com/osse101/BoobaMarket_Go/internal/metrics"
	"github.com/osse101/BoobaMarket_Go/internal/repository"
)

func (s *service) CreateListing(ctx context.Context, sellerID string, inventoryItemID int64, price int) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCreateListingCalled, "seller_id", sellerID, "inventory_id", inventoryItemID, "price", price)

	if err := validateIdentity(sellerID); err != nil {
		return 0, err
	}
	if err := validatePrice(price); err != nil {
		return 0, err
	}

	var listingID int64
	err := s.inTx(ctx, func(tx repository.MarketplaceTx) error {
		item, err := tx.GetItem(ctx, inventoryItemID)
		if err != nil {
			if errors.Is(err, domain.ErrItemNotFound) {
				return fmt.Errorf("%w: %w", domain.ErrItemNotEligible, err)
			}
			return storageErr(ErrMsgGetItemFailed, err)
		}
		if item.OwnerUserID != sellerID {
			return fmt.Errorf(ErrMsgItemNotOwnedFmt, inventoryItemID, sellerID, domain.ErrItemNotEligible)
		}

		listingID, err = tx.CreateListing(ctx, sellerID, inventoryItemID, price, domain.SnapshotOf(*item))
		if err != nil {
			return storageErr(ErrMsgCreateListingFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.ListingsCreated.Inc()
	log.Info(LogMsgListingCreated, "listing_id", listingID, "seller_id", sellerID, "inventory_id", inventoryItemID)
	return listingID, nil
}

func (s *service) Cancel(ctx context.Context, requesterID string, listingID int64) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCancelCalled, "requester_id", requesterID, "listing_id", listingID)

	if err := validateIdentity(requesterID); err != nil {
		return err
	}

	err := s.inTx(ctx, func(tx repository.MarketplaceTx) error {
		if err := tx.RemoveListingOwnedBy(ctx, listingID, requesterID); err != nil {
			return storageErr(ErrMsgRemoveListingFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ListingsCancelled.Inc()
	log.Info(LogMsgListingCancelled, "listing_id", listingID)
	return nil
}
