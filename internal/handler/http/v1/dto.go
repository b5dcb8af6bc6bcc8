package v1

// Поля-указатели нужны, чтобы отличать отсутствующее поле от нулевого значения:
// casualties=0 допустимо, а отсутствие casualties - нет.

// DisasterEventRequest DTO события для предсказания
// @Description Атрибуты события. Все 12 полей обязательны
type DisasterEventRequest struct {
	Country                 *string  `json:"country" validate:"required,min=1" example:"Nepal"`
	DisasterType            *string  `json:"disaster_type" validate:"required,min=1" example:"earthquake"`
	SeverityIndex           *float64 `json:"severity_index" validate:"required" example:"8.5"`
	Casualties              *int     `json:"casualties" validate:"required,gte=0" example:"500"`
	EconomicLossUSD         *float64 `json:"economic_loss_usd" validate:"required" example:"1000000"`
	AidAmountUSD            *float64 `json:"aid_amount_usd" validate:"required" example:"200000"`
	ResponseEfficiencyScore *float64 `json:"response_efficiency_score" validate:"required" example:"0.6"`
	RecoveryDays            *int     `json:"recovery_days" validate:"required,gte=0" example:"90"`
	Latitude                *float64 `json:"latitude" validate:"required,latitude" example:"28.3"`
	Longitude               *float64 `json:"longitude" validate:"required,longitude" example:"84.1"`
	Month                   *int     `json:"month" validate:"required,min=1,max=12" example:"4"`
	Year                    *int     `json:"year" validate:"required" example:"2015"`
}

// PredictResponse DTO ответа на одиночное предсказание
// @Description DTO ответа на одиночное предсказание
type PredictResponse struct {
	Success                    bool                 `json:"success"`
	PredictedResponseTimeHours float64              `json:"predicted_response_time_hours"`
	SeverityTier               string               `json:"severity_tier" enums:"CRITICAL,HIGH,MODERATE,LOW"`
	InputReceived              DisasterEventRequest `json:"input_received"`
}

// BatchPredictResponse DTO ответа на пакетное предсказание
// @Description Уровни возвращаются только при include_tiers=true
type BatchPredictResponse struct {
	Success       bool      `json:"success"`
	Predictions   []float64 `json:"predictions"`
	Count         int       `json:"count"`
	SeverityTiers []string  `json:"severity_tiers,omitempty"`
}

// HealthResponse DTO ответа health-check
// @Description DTO ответа health-check
type HealthResponse struct {
	Status string `json:"status" example:"online"`
	Model  string `json:"model" example:"disaster_response_model"`
}

// ErrorResponse DTO ответа с ошибкой. Detail - строка или список ошибок полей
// @Description DTO ответа с ошибкой
type ErrorResponse struct {
	Detail any `json:"detail"`
}
