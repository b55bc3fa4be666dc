package handler

// User-facing error messages. They never expose internal error details.
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgInvalidQueryParam   = "Invalid %s query parameter"
	ErrMsgMissingQueryParam   = "Missing %s query parameter"

	// Users
	ErrMsgUserNotFound  = "User not found"
	ErrMsgUsernameTaken = "Username already taken"
	ErrMsgFeatureLocked = "That feature is locked"

	// Quests. Clients key on REST_REQUIRED to prompt a rest.
	ErrMsgRestRequired          = "REST_REQUIRED"
	ErrMsgNotEnoughEnergy       = "Not enough energy for this quest"
	ErrMsgQuestNotFound         = "Quest not found"
	ErrMsgQuestAlreadyCompleted = "Quest already completed"

	// Planner
	ErrMsgPlannerUnavailable = "Planner is unavailable. Please try again later."
)

// Success messages
const (
	MsgQuestCompleted = "Quest completed"
	MsgLevelUp        = "Level up! You reached level %d"
	MsgPlanIngested   = "Plan accepted"
	MsgShopUnlocked   = "Shop unlocked"
	MsgRested         = "You rest and recover your health"
	MsgMeditated      = "You meditate and recover your energy"
	MsgSenzuEaten     = "Senzu bean eaten. Fully restored!"
)
