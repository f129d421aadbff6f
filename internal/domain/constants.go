package domain

// DefaultBalance is the balance of a user that has never been seen before.
const DefaultBalance = 50

// Limits
const (
	MaxListingPrice    = 1_000_000_000
	MaxBalance         = 1_000_000_000
	MaxItemFieldLength = 100
	MaxImageRefLength  = 2048
	MaxUserIDLength    = 255
)
