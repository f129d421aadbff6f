package marketplace

import (
	"context"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
	"github.com/osse101/BoobaMarket_Go/internal/logger"
	"github.com/osse101/BoobaMarket_Go/internal/metrics"
	"github.com/osse101/BoobaMarket_Go/internal/repository"
)

func (s *service) AddInventoryItem(ctx context.Context, ownerID string, fields domain.ItemFields) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAddInventoryItemCalled, "owner_id", ownerID, "type", fields.Type, "name", fields.Name)

	if err := validateIdentity(ownerID); err != nil {
		return 0, err
	}
	if err := fields.Validate(); err != nil {
		return 0, err
	}

	var itemID int64
	err := s.inTx(ctx, func(tx repository.MarketplaceTx) error {
		var err error
		itemID, err = tx.AddItem(ctx, ownerID, fields)
		if err != nil {
			return storageErr(ErrMsgAddItemFailed, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	metrics.ItemsGranted.Inc()
	log.Info(LogMsgItemAdded, "owner_id", ownerID, "inventory_id", itemID)
	return itemID, nil
}

func (s *service) SetBalance(ctx context.Context, userID string, balance int) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSetBalanceCalled, "user_id", userID, "balance", balance)

	if err := validateIdentity(userID); err != nil {
		return err
	}
	if err := validateBalance(balance); err != nil {
		return err
	}

	err := s.inTx(ctx, func(tx repository.MarketplaceTx) error {
		if err := tx.SetBalance(ctx, userID, balance); err != nil {
			return storageErr(ErrMsgSetBalanceFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.BalanceOverwrites.Inc()
	log.Info(LogMsgBalanceSet, "user_id", userID, "balance", balance)
	return nil
}

// GetInventory returns the user's items, newest first, with their balance.
func (s *service) GetInventory(ctx context.Context, userID string) (*domain.Inventory, error) {
	if err := validateIdentity(userID); err != nil {
		return nil, err
	}

	items, err := s.repo.GetItemsByOwner(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error(ErrMsgGetItemsFailed, "user_id", userID, "error", err)
		return nil, storageErr(ErrMsgGetItemsFailed, err)
	}
	if items == nil {
		items = []domain.InventoryItem{}
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error(ErrMsgGetBalanceFailed, "user_id", userID, "error", err)
		return nil, storageErr(ErrMsgGetBalanceFailed, err)
	}

	return &domain.Inventory{
		UserID:  userID,
		Balance: balance,
		Items:   items,
	}, nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (int, error) {
	if err := validateIdentity(userID); err != nil {
		return 0, err
	}

	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, storageErr(ErrMsgGetBalanceFailed, err)
	}
	return balance, nil
}
