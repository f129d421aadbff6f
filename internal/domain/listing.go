package domain

import "time"

// ListingSnapshot is the item's display data denormalized onto a listing at listing time.
type ListingSnapshot struct {
	ItemType string `json:"booba_type"`
	Name     string `json:"booba_name"`
	ImageRef string `json:"booba_image"`
	Rarity   string `json:"booba_rarity"`
}

// SnapshotOf captures the display fields of an item.
func SnapshotOf(item InventoryItem) ListingSnapshot {
	return ListingSnapshot{
		ItemType: item.ItemType,
		Name:     item.Name,
		ImageRef: item.ImageRef,
		Rarity:   item.Rarity,
	}
}

// MarketListing is an active offer to sell one owned item at a fixed price.
type MarketListing struct {
	ID              int64  `json:"id"`
	SellerID        string `json:"seller_id"`
	InventoryItemID int64  `json:"inventory_id"`
	Price           int    `json:"price"`
	ListingSnapshot
	ListedAt time.Time `json:"listed_at"`
}

// BuyResult describes a completed purchase.
type BuyResult struct {
	BuyerBalance    int    `json:"balance"`
	InventoryItemID int64  `json:"inventory_id"`
	Price           int    `json:"price"`
	SellerID        string `json:"seller_id"`
}
