package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor_Boundaries(t *testing.T) {
	tests := []struct {
		hours float64
		want  SeverityTier
	}{
		{0, SeverityCritical},
		{6.00, SeverityCritical},
		{6.01, SeverityHigh},
		{15.00, SeverityHigh},
		{15.01, SeverityModerate},
		{25.00, SeverityModerate},
		{25.01, SeverityLow},
		{120, SeverityLow},
		{-3, SeverityCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.hours), "hours=%v", tt.hours)
	}
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 12.35, RoundHours(12.3456))
	assert.Equal(t, 12.34, RoundHours(12.3449))
	assert.Equal(t, 7.0, RoundHours(7))
	assert.Equal(t, -1.24, RoundHours(-1.2399))

	// Точно представимые половины округляются к четному
	assert.Equal(t, 15.12, RoundHours(15.125))
	assert.Equal(t, 0.12, RoundHours(0.125))
	assert.Equal(t, 0.38, RoundHours(0.375))
	assert.Equal(t, -0.12, RoundHours(-0.125))
}

func TestNewPrediction_TierUsesRoundedValue(t *testing.T) {
	// 6.004 округляется до 6.00, поэтому остается CRITICAL
	p := NewPrediction(6.004)
	assert.Equal(t, 6.0, p.ResponseTimeHours)
	assert.Equal(t, SeverityCritical, p.Tier)

	p = NewPrediction(6.006)
	assert.Equal(t, 6.01, p.ResponseTimeHours)
	assert.Equal(t, SeverityHigh, p.Tier)

	// 15.125 округляется к четному 15.12 и остается HIGH
	p = NewPrediction(15.125)
	assert.Equal(t, 15.12, p.ResponseTimeHours)
	assert.Equal(t, SeverityHigh, p.Tier)

	p = NewPrediction(0.125)
	assert.Equal(t, 0.12, p.ResponseTimeHours)
	assert.Equal(t, SeverityCritical, p.Tier)
}
