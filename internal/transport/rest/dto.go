package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// Wire names follow the dashboard client, which predates this service.

type userResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"nombre"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"fechaCreacion"`
	LastLoginAt time.Time `json:"ultimoAcceso"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}

type readingResponse struct {
	ID        string     `json:"_id,omitempty"`
	UserID    string     `json:"usuarioId,omitempty"`
	Date      time.Time  `json:"fecha"`
	KWh       float64    `json:"consumo"`
	CostUSD   *float64   `json:"costo"`
	Device    *string    `json:"dispositivo,omitempty"`
	Notes     *string    `json:"notas,omitempty"`
	CreatedAt *time.Time `json:"fechaCreacion,omitempty"`
}

func toReadingResponse(r domain.Reading) readingResponse {
	resp := readingResponse{
		Date:    r.Date,
		KWh:     r.KWh,
		CostUSD: r.CostUSD,
		Device:  r.Device,
		Notes:   r.Notes,
	}
	if r.ID != uuid.Nil {
		resp.ID = r.ID.String()
	}
	if r.UserID != uuid.Nil {
		resp.UserID = r.UserID.String()
	}
	if !r.CreatedAt.IsZero() {
		created := r.CreatedAt
		resp.CreatedAt = &created
	}
	return resp
}

func toReadingResponses(readings []domain.Reading) []readingResponse {
	out := make([]readingResponse, 0, len(readings))
	for _, r := range readings {
		out = append(out, toReadingResponse(r))
	}
	return out
}

type recommendationResponse struct {
	Category      string   `json:"tipo"`
	Message       string   `json:"mensaje"`
	PercentChange float64  `json:"porcentajeCambio"`
	Suggestions   []string `json:"sugerencias"`
}

func toRecommendationResponse(rec domain.Recommendation) recommendationResponse {
	suggestions := rec.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return recommendationResponse{
		Category:      rec.Category.String(),
		Message:       rec.Message,
		PercentChange: rec.PercentChange,
		Suggestions:   suggestions,
	}
}

type summaryResponse struct {
	Count     int     `json:"registros"`
	TotalKWh  float64 `json:"totalConsumo"`
	TotalCost float64 `json:"totalCosto"`
	Average   float64 `json:"promedio"`
	Max       float64 `json:"maximo"`
	Min       float64 `json:"minimo"`
}

func toSummaryResponse(s domain.Summary) summaryResponse {
	return summaryResponse{
		Count:     s.Count,
		TotalKWh:  s.TotalKWh,
		TotalCost: s.TotalCostUSD,
		Average:   s.AverageKWh,
		Max:       s.MaxKWh,
		Min:       s.MinKWh,
	}
}

type weekResponse struct {
	Number           int       `json:"numero"`
	Start            time.Time `json:"inicio"`
	End              time.Time `json:"fin"`
	TotalKWh         float64   `json:"consumoTotal"`
	TotalCost        float64   `json:"costoTotal"`
	Days             int       `json:"dias"`
	AverageKWh       float64   `json:"promedioDiario"`
	PercentOfAverage float64   `json:"porcentajePromedio"`
	Efficiency       string    `json:"eficiencia"`
}

type weeklyResponse struct {
	Success          bool           `json:"success"`
	Weeks            []weekResponse `json:"semanas"`
	AverageKWh       float64        `json:"promedioGeneral"`
	ConsumptionTrend float64        `json:"tendenciaConsumo"`
	CostTrend        float64        `json:"tendenciaCosto"`
}

func toWeeklyResponse(rep domain.WeeklyReport) weeklyResponse {
	weeks := make([]weekResponse, 0, len(rep.Weeks))
	for _, w := range rep.Weeks {
		weeks = append(weeks, weekResponse{
			Number:           w.Number,
			Start:            w.Start,
			End:              w.End,
			TotalKWh:         w.TotalKWh,
			TotalCost:        w.TotalCostUSD,
			Days:             w.Days,
			AverageKWh:       w.AverageKWh,
			PercentOfAverage: w.PercentOfAverage,
			Efficiency:       string(w.Efficiency),
		})
	}
	return weeklyResponse{
		Success:          true,
		Weeks:            weeks,
		AverageKWh:       rep.AverageKWh,
		ConsumptionTrend: rep.ConsumptionTrend,
		CostTrend:        rep.CostTrend,
	}
}
