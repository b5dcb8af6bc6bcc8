package v1

import "github.com/shenikar/disaster_response_predictor/internal/models"

// DTOToDisasterEvent преобразует провалидированный DTO в доменную модель.
// Вызывать только после успешной валидации: все указатели не nil
func DTOToDisasterEvent(dto DisasterEventRequest) models.DisasterEvent {
	return models.DisasterEvent{
		Country:                 *dto.Country,
		DisasterType:            *dto.DisasterType,
		SeverityIndex:           *dto.SeverityIndex,
		Casualties:              *dto.Casualties,
		EconomicLossUSD:         *dto.EconomicLossUSD,
		AidAmountUSD:            *dto.AidAmountUSD,
		ResponseEfficiencyScore: *dto.ResponseEfficiencyScore,
		RecoveryDays:            *dto.RecoveryDays,
		Latitude:                *dto.Latitude,
		Longitude:               *dto.Longitude,
		Month:                   *dto.Month,
		Year:                    *dto.Year,
	}
}

// DTOsToDisasterEvents преобразует слайс DTO в слайс доменных моделей
func DTOsToDisasterEvents(dtos []DisasterEventRequest) []models.DisasterEvent {
	events := make([]models.DisasterEvent, len(dtos))
	for i, dto := range dtos {
		events[i] = DTOToDisasterEvent(dto)
	}
	return events
}

// PredictionsToBatchResponse собирает ответ пакетного предсказания
func PredictionsToBatchResponse(predictions []models.Prediction, includeTiers bool) *BatchPredictResponse {
	resp := &BatchPredictResponse{
		Success:     true,
		Predictions: make([]float64, len(predictions)),
		Count:       len(predictions),
	}
	if includeTiers {
		resp.SeverityTiers = make([]string, len(predictions))
	}
	for i, p := range predictions {
		resp.Predictions[i] = p.ResponseTimeHours
		if includeTiers {
			resp.SeverityTiers[i] = string(p.Tier)
		}
	}
	return resp
}
