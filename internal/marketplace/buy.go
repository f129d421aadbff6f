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

// Buy moves the listing price from buyer to seller and the item from seller
// to buyer, consuming the listing. Concurrent buyers of one listing race on
// the listing row and exactly one of them wins.
func (s *service) Buy(ctx context.Context, buyerID string, listingID int64) (*domain.BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyCalled, "buyer_id", buyerID, "listing_id", listingID)

	if err := validateIdentity(buyerID); err != nil {
		return nil, err
	}

	result, err := s.executeBuy(ctx, buyerID, listingID)
	if err != nil {
		metrics.Purchases.WithLabelValues(purchaseOutcome(err)).Inc()

		if errors.Is(err, domain.ErrConflict) {
			metrics.OwnershipConflicts.Inc()
			log.Error(LogMsgOwnershipConflict, "listing_id", listingID, "error", err)
			s.purgeStaleListing(ctx, listingID)
			return nil, fmt.Errorf("%w: %w", domain.ErrInternal, err)
		}

		log.Info(LogMsgBuyRejected, "listing_id", listingID, "reason", err.Error())
		return nil, err
	}

	metrics.Purchases.WithLabelValues(metrics.OutcomeSuccess).Inc()
	metrics.PurchaseVolume.Add(float64(result.Price))
	log.Info(LogMsgPurchaseCompleted,
		"listing_id", listingID,
		"buyer_id", buyerID,
		"seller_id", result.SellerID,
		"inventory_id", result.InventoryItemID,
		"price", result.Price,
		"buyer_balance", result.BuyerBalance)
	return result, nil
}

func (s *service) executeBuy(ctx context.Context, buyerID string, listingID int64) (*domain.BuyResult, error) {
	var result *domain.BuyResult
	err := s.inTx(ctx, func(tx repository.MarketplaceTx) error {
		listing, err := tx.GetListingByID(ctx, listingID)
		if err != nil {
			return storageErr(ErrMsgGetListingFailed, err)
		}
		if listing.SellerID == buyerID {
			return domain.ErrSelfTrade
		}

		balance, err := tx.GetBalance(ctx, buyerID)
		if err != nil {
			return storageErr(ErrMsgGetBalanceFailed, err)
		}
		if balance < listing.Price {
			return fmt.Errorf(ErrMsgInsufficientFundsFmt, listing.Price, balance, domain.ErrInsufficientFunds)
		}

		removed, err := tx.RemoveListingIfPresent(ctx, listingID)
		if err != nil {
			return storageErr(ErrMsgRemoveListingFailed, err)
		}
		if !removed {
			return domain.ErrListingNotFound
		}

		newBalance, err := tx.AdjustBalance(ctx, buyerID, -listing.Price)
		if err != nil {
			return storageErr(ErrMsgDebitBuyerFailed, err)
		}
		if _, err := tx.AdjustBalance(ctx, listing.SellerID, listing.Price); err != nil {
			return storageErr(ErrMsgCreditSellerFailed, err)
		}
		if err := tx.TransferOwnership(ctx, listing.InventoryItemID, listing.SellerID, buyerID); err != nil {
			return storageErr(ErrMsgTransferFailed, err)
		}

		result = &domain.BuyResult{
			BuyerBalance:    newBalance,
			InventoryItemID: listing.InventoryItemID,
			Price:           listing.Price,
			SellerID:        listing.SellerID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// purgeStaleListing removes a listing whose seller no longer owns the item.
// It runs after the failed purchase has been rolled back, so balances are
// untouched. Failures are logged and the listing is left for the next buyer
// to trip over.
func (s *service) purgeStaleListing(ctx context.Context, listingID int64) {
	log := logger.FromContext(ctx)

	err := s.inTx(ctx, func(tx repository.MarketplaceTx) error {
		listing, err := tx.GetListingByID(ctx, listingID)
		if err != nil {
			if errors.Is(err, domain.ErrListingNotFound) {
				return nil
			}
			return err
		}

		owner, err := tx.GetOwner(ctx, listing.InventoryItemID)
		if err != nil && !errors.Is(err, domain.ErrItemNotFound) {
			return err
		}
		if owner == listing.SellerID {
			return nil
		}

		if _, err := tx.RemoveListingIfPresent(ctx, listingID); err != nil {
			return err
		}
		log.Info(LogMsgStaleListingPurged, "listing_id", listingID, "seller_id", listing.SellerID, "owner", owner)
		return nil
	})
	if err != nil {
		log.Error(LogMsgPurgeFailed, "listing_id", listingID, "error", err)
	}
}

func purchaseOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, domain.ErrSelfTrade):
		return metrics.OutcomeSelfTrade
	case errors.Is(err, domain.ErrInsufficientFunds):
		return metrics.OutcomeInsufficientFunds
	default:
		return metrics.OutcomeError
	}
}
