package store

// Strategy ENUMs
const (
	StrategyTypePaid = "paid"
	StrategyTypeFree = "free"
)

const (
	StrategyStatusActive    = "active"
	StrategyStatusCancelled = "cancelled"
	StrategyStatusCompleted = "completed"
)

// Post ENUMs
const (
	PostStatusPending = "pending"
	PostStatusPosted  = "posted"
	PostStatusFailed  = "failed"
)

// Interaction ENUMs
const (
	InteractionTypeComment = "comment"
	InteractionTypeMessage = "message"
)

const (
	SenderRoleUser = "user"
	SenderRoleBot  = "bot"
)

// Wallet ENUMs
const (
	WalletTransactionDebit  = "debit"
	WalletTransactionCredit = "credit"
)

// Activity ENUMs
const (
	ActivityLevelInfo    = "info"
	ActivityLevelSuccess = "success"
	ActivityLevelError   = "error"
)
