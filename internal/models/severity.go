package models

// SeverityTier - грубая классификация по предсказанному времени реагирования
type SeverityTier string

const (
	SeverityCritical SeverityTier = "CRITICAL"
	SeverityHigh     SeverityTier = "HIGH"
	SeverityModerate SeverityTier = "MODERATE"
	SeverityLow      SeverityTier = "LOW"
)

// Верхние границы уровней включительно, в часах
const (
	criticalMaxHours = 6
	highMaxHours     = 15
	moderateMaxHours = 25
)

// TierFor возвращает уровень серьезности для предсказанного времени реагирования
func TierFor(hours float64) SeverityTier {
	switch {
	case hours <= criticalMaxHours:
		return SeverityCritical
	case hours <= highMaxHours:
		return SeverityHigh
	case hours <= moderateMaxHours:
		return SeverityModerate
	default:
		return SeverityLow
	}
}
