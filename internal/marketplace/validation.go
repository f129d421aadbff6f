package marketplace

import (
	"fmt"
	"strings"

	"github.com/osse101/BoobaMarket_Go/internal/domain"
)

// validateIdentity rejects calls made without a caller identity
func validateIdentity(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.ErrUnauthorized
	}
	if len(userID) > domain.MaxUserIDLength {
		return fmt.Errorf(ErrMsgUserIDTooLongFmt, domain.MaxUserIDLength, domain.ErrInvalidInput)
	}
	return nil
}

func validatePrice(price int) error {
	if price <= 0 {
		return domain.ErrInvalidPrice
	}
	if price > domain.MaxListingPrice {
		return fmt.Errorf(ErrMsgPriceExceedsMaxFmt, price, domain.MaxListingPrice, domain.ErrInvalidPrice)
	}
	return nil
}

func validateBalance(balance int) error {
	if balance < 0 {
		return domain.ErrNegativeBalance
	}
	if balance > domain.MaxBalance {
		return fmt.Errorf(ErrMsgBalanceExceedsMaxFmt, balance, domain.MaxBalance, domain.ErrInvalidInput)
	}
	return nil
}
