package progression

import "github.com/osse101/ProjectLife_Go/internal/domain"

// DeriveStatus classifies a user from HP and SP. Rules are evaluated in order
// and the first match wins, so an incapacitated user is EXHAUSTED even at full SP.
func DeriveStatus(hp, sp int) domain.Status {
	switch {
	case hp <= 0:
		return domain.StatusExhausted
	case sp >= SSJThreshold:
		return domain.StatusSSJ
	case sp <= ExhaustedThreshold:
		return domain.StatusExhausted
	default:
		return domain.StatusNormal
	}
}

// RefreshStatus recomputes u.Status from its resources
func RefreshStatus(u *domain.User) {
	u.Status = DeriveStatus(u.HP, u.SP)
}
