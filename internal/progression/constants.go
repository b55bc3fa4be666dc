package progression

// Status thresholds. Fixed rules of the game, not configuration.
const (
	SSJThreshold       = 80
	ExhaustedThreshold = 20
)

// Level curve: max_exp grows by 20% per level, floored.
const (
	MaxExpGrowthNumerator   = 6
	MaxExpGrowthDenominator = 5
)

// Recovery amounts
const (
	RestHPAmount     = 50
	RestSPAmount     = 30
	MeditateSPAmount = 10
)

// DefaultStepTitleFormat names plan steps that arrive without a title
const DefaultStepTitleFormat = "Step %d"

// Level gates
const (
	ShopUnlockLevel = 5
)

// Log messages
const (
	LogMsgPlanIngested       = "Goal plan ingested"
	LogMsgPlanEmpty          = "Empty goal plan, nothing to ingest"
	LogMsgQuestCompleted     = "Quest completed"
	LogMsgQuestRevealed      = "Next quest revealed"
	LogMsgLevelUp            = "User leveled up"
	LogMsgCompletionRejected = "Quest completion rejected"
)

// Rejection reasons used as metric labels
const (
	RejectReasonIncapacitated      = "incapacitated"
	RejectReasonInsufficientEnergy = "insufficient_energy"
	RejectReasonNotFound           = "not_found"
	RejectReasonAlreadyCompleted   = "already_completed"
	RejectReasonOther              = "other"
)
