package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/ProjectLife_Go/internal/domain"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		hp, sp   int
		expected domain.Status
	}{
		{"zero hp beats full sp", 0, 100, domain.StatusExhausted},
		{"negative hp", -5, 50, domain.StatusExhausted},
		{"ssj at threshold", 1, 80, domain.StatusSSJ},
		{"ssj full", 100, 100, domain.StatusSSJ},
		{"normal just above exhausted", 100, 21, domain.StatusNormal},
		{"normal just below ssj", 100, 79, domain.StatusNormal},
		{"exhausted at threshold", 100, 20, domain.StatusExhausted},
		{"exhausted empty sp", 100, 0, domain.StatusExhausted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.hp, tt.sp))
		})
	}
}

func TestDeriveStatus_Properties(t *testing.T) {
	for hp := -10; hp <= 120; hp += 5 {
		for sp := -10; sp <= 120; sp++ {
			got := DeriveStatus(hp, sp)
			switch {
			case hp <= 0:
				assert.Equal(t, domain.StatusExhausted, got, "hp=%d sp=%d", hp, sp)
			case sp >= SSJThreshold:
				assert.Equal(t, domain.StatusSSJ, got, "hp=%d sp=%d", hp, sp)
			case sp <= ExhaustedThreshold:
				assert.Equal(t, domain.StatusExhausted, got, "hp=%d sp=%d", hp, sp)
			default:
				assert.Equal(t, domain.StatusNormal, got, "hp=%d sp=%d", hp, sp)
			}
		}
	}
}

func TestRefreshStatus_IgnoresStoredValue(t *testing.T) {
	u := domain.User{HP: 100, SP: 90, Status: domain.StatusExhausted}
	RefreshStatus(&u)
	assert.Equal(t, domain.StatusSSJ, u.Status)
}
