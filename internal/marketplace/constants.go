package marketplace

// ==================== Error Messages ====================

// Database operation error messages
const (
	ErrMsgBeginTransactionFailed  = "failed to begin transaction"
	ErrMsgCommitTransactionFailed = "failed to commit transaction"
	ErrMsgGetListingFailed        = "failed to get listing"
	ErrMsgGetListingsFailed       = "failed to get active listings"
	ErrMsgGetItemFailed           = "failed to get item"
	ErrMsgGetItemsFailed          = "failed to get inventory items"
	ErrMsgGetBalanceFailed        = "failed to get balance"
	ErrMsgCreateListingFailed     = "failed to create listing"
	ErrMsgRemoveListingFailed     = "failed to remove listing"
	ErrMsgDebitBuyerFailed        = "failed to debit buyer"
	ErrMsgCreditSellerFailed      = "failed to credit seller"
	ErrMsgTransferFailed          = "failed to transfer ownership"
	ErrMsgAddItemFailed           = "failed to add item"
	ErrMsgSetBalanceFailed        = "failed to set balance"
)

// Formatted error messages for validation
const (
	ErrMsgPriceExceedsMaxFmt   = "price %d exceeds maximum allowed (%d): %w"
	ErrMsgBalanceExceedsMaxFmt = "balance %d exceeds maximum allowed (%d): %w"
	ErrMsgUserIDTooLongFmt     = "user id longer than %d characters: %w"
	ErrMsgItemNotOwnedFmt      = "item %d is not owned by %s: %w"
	ErrMsgInsufficientFundsFmt = "price %d exceeds balance %d: %w"
)

// ==================== Log Messages ====================

// Service operation log messages
const (
	LogMsgCreateListingCalled    = "CreateListing called"
	LogMsgListingCreated         = "Listing created"
	LogMsgBuyCalled              = "Buy called"
	LogMsgPurchaseCompleted      = "Purchase completed"
	LogMsgBuyRejected            = "Buy rejected"
	LogMsgCancelCalled           = "Cancel called"
	LogMsgListingCancelled       = "Listing cancelled"
	LogMsgAddInventoryItemCalled = "AddInventoryItem called"
	LogMsgItemAdded              = "Item added"
	LogMsgSetBalanceCalled       = "SetBalance called"
	LogMsgBalanceSet             = "Balance set"
)

// Conflict recovery log messages
const (
	LogMsgOwnershipConflict  = "Listing seller no longer owns the item, purchase rolled back"
	LogMsgStaleListingPurged = "Stale listing purged"
	LogMsgPurgeFailed        = "Failed to purge stale listing"
)
