package models

import "math"

// Prediction - округленное предсказание модели и производный уровень
type Prediction struct {
	ResponseTimeHours float64      `json:"predicted_response_time_hours"`
	Tier              SeverityTier `json:"severity_tier"`
}

// NewPrediction округляет сырое значение модели и вычисляет уровень по округленному значению
func NewPrediction(raw float64) Prediction {
	rounded := RoundHours(raw)
	return Prediction{
		ResponseTimeHours: rounded,
		Tier:              TierFor(rounded),
	}
}

// RoundHours округляет до двух знаков после запятой, половины - к четному (15.125 -> 15.12)
func RoundHours(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
