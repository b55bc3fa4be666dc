package domain

// New user defaults
const (
	DefaultLevel  = 1
	DefaultMaxExp = 1000
	DefaultMaxHP  = 100
	DefaultMaxSP  = 100
)

// Feature keys gated by level
const (
	FeatureShop = "shop"
)

// Recovery action names
const (
	RecoveryActionRest     = "rest"
	RecoveryActionMeditate = "meditate"
	RecoveryActionSenzu    = "senzu"
)
