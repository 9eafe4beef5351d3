package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims do token de sessão do dashboard
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionSnapshot resume o estado atual de uma sessão do dashboard
type SessionSnapshot struct {
	ID             string            `json:"id"`
	ModelType      string            `json:"model_type"`
	Filters        RecordFilter      `json:"filters"`
	Modifiers      ScenarioModifiers `json:"modifiers"`
	ForecastMonths int               `json:"forecast_months"`
	RecordCount    int               `json:"record_count"`
	SeriesLength   int               `json:"series_length"`
	ForecastRows   int               `json:"forecast_rows"`
	CreatedAt      time.Time         `json:"created_at"`
	LastActiveAt   time.Time         `json:"last_active_at"`
}
