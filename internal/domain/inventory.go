package domain

import (
	"strings"
	"time"
)

// InventoryItem is a single owned Booba.
type InventoryItem struct {
	ID          int64     `json:"id"`
	OwnerUserID string    `json:"user_id"`
	ItemType    string    `json:"booba_type"`
	Name        string    `json:"booba_name"`
	ImageRef    string    `json:"booba_image"`
	Rarity      string    `json:"booba_rarity"`
	AcquiredAt  time.Time `json:"acquired_at"`
}

// ItemFields are the display fields supplied when granting a new item.
type ItemFields struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Image  string `json:"image"`
	Rarity string `json:"rarity"`
}

// Validate checks that the fields describe a displayable item.
func (f ItemFields) Validate() error {
	if strings.TrimSpace(f.Type) == "" || strings.TrimSpace(f.Name) == "" {
		return ErrInvalidItemFields
	}
	if len(f.Type) > MaxItemFieldLength || len(f.Name) > MaxItemFieldLength ||
		len(f.Rarity) > MaxItemFieldLength || len(f.Image) > MaxImageRefLength {
		return ErrInvalidItemFields
	}
	return nil
}

// Inventory is the browse view of a user's holdings.
type Inventory struct {
	UserID  string          `json:"user_id"`
	Balance int             `json:"balance"`
	Items   []InventoryItem `json:"inventory"`
}
