package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Identity error messages
	ErrMsgMissingUserID = "Missing X-User-Id header"
	ErrMsgUserIDTooLong = "X-User-Id header is too long"

	// Path parameter error messages
	ErrMsgInvalidListingID = "Invalid listing ID"
)

// Success messages for API responses
const (
	MsgListingCreated   = "Listing created"
	MsgListingCancelled = "Listing cancelled"
	MsgPurchaseComplete = "Purchase complete"
	MsgItemAdded        = "Item added successfully"
	MsgBalanceUpdated   = "Balance updated"
)

// Operation names used in logs
const (
	OpListListings  = "List listings"
	OpCreateListing = "Create listing"
	OpBuyListing    = "Buy listing"
	OpCancelListing = "Cancel listing"
	OpGetInventory  = "Get inventory"
	OpAddItem       = "Add item"
	OpSetBalance    = "Set balance"
)
