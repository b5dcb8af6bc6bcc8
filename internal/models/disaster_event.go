package models

// DisasterEvent - атрибуты одного события, подаваемые на вход модели
type DisasterEvent struct {
	Country                 string  `json:"country"`
	DisasterType            string  `json:"disaster_type"`
	SeverityIndex           float64 `json:"severity_index"`
	Casualties              int     `json:"casualties"`
	EconomicLossUSD         float64 `json:"economic_loss_usd"`
	AidAmountUSD            float64 `json:"aid_amount_usd"`
	ResponseEfficiencyScore float64 `json:"response_efficiency_score"`
	RecoveryDays            int     `json:"recovery_days"`
	Latitude                float64 `json:"latitude"`
	Longitude               float64 `json:"longitude"`
	Month                   int     `json:"month"`
	Year                    int     `json:"year"`
}
