package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
	"github.com/heartmarshall/energymonitor-backend/internal/service/insight"
)

// insightService defines the minimal interface needed by InsightHandler.
type insightService interface {
	Recommend(ctx context.Context, userID uuid.UUID, days int) (domain.Recommendation, error)
	Summarize(ctx context.Context, q insight.SummaryQuery) (domain.Summary, error)
	Weekly(ctx context.Context, userID uuid.UUID, weeks int) (domain.WeeklyReport, error)
	Demo() insight.DemoResult
}

// InsightHandler serves the analysis endpoints.
type InsightHandler struct {
	svc insightService
	log *slog.Logger
}

// NewInsightHandler creates an InsightHandler.
func NewInsightHandler(svc insightService, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{svc: svc, log: logger.With("handler", "insight")}
}

type recommendationEnvelope struct {
	Success        bool                   `json:"success"`
	Recommendation recommendationResponse `json:"recomendacion"`
}

type summaryEnvelope struct {
	Success bool            `json:"success"`
	Summary summaryResponse `json:"resumen"`
}

type demoResponse struct {
	Success        bool                   `json:"success"`
	Readings       []readingResponse      `json:"consumos"`
	Recommendation recommendationResponse `json:"recomendacion"`
}

// Recommend handles GET /api/consumo/usuario/{usuarioId}/recomendacion?dias=.
func (h *InsightHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUser(w, r)
	if !ok {
		return
	}
	days, err := queryInt(r, "dias")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rec, err := h.svc.Recommend(r.Context(), userID, days)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, recommendationEnvelope{Success: true, Recommendation: toRecommendationResponse(rec)})
}

// Summary handles GET /api/consumo/usuario/{usuarioId}/resumen.
func (h *InsightHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUser(w, r)
	if !ok {
		return
	}

	q := insight.SummaryQuery{UserID: userID}
	if device := r.URL.Query().Get("dispositivo"); device != "" {
		q.Device = &device
	}
	var err error
	if q.From, err = queryDate(r, "desde"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if q.To, err = queryDate(r, "hasta"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	sum, err := h.svc.Summarize(r.Context(), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryEnvelope{Success: true, Summary: toSummaryResponse(sum)})
}

// Weekly handles GET /api/consumo/usuario/{usuarioId}/semanas?semanas=.
func (h *InsightHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUser(w, r)
	if !ok {
		return
	}
	weeks, err := queryInt(r, "semanas")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	rep, err := h.svc.Weekly(r.Context(), userID, weeks)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWeeklyResponse(rep))
}

// Demo handles GET /api/consumo/demo. No session is needed.
func (h *InsightHandler) Demo(w http.ResponseWriter, r *http.Request) {
	res := h.svc.Demo()
	writeJSON(w, http.StatusOK, demoResponse{
		Success:        true,
		Readings:       toReadingResponses(res.Readings),
		Recommendation: toRecommendationResponse(res.Recommendation),
	})
}
