package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
	"github.com/heartmarshall/energymonitor-backend/internal/service/consumption"
	"github.com/heartmarshall/energymonitor-backend/pkg/ctxutil"
)

// consumptionService defines the minimal interface needed by ConsumptionHandler.
type consumptionService interface {
	Record(ctx context.Context, input consumption.RecordInput) (domain.Reading, error)
	ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.Reading, error)
}

// ConsumptionHandler serves reading capture and history.
type ConsumptionHandler struct {
	svc consumptionService
	log *slog.Logger
}

// NewConsumptionHandler creates a ConsumptionHandler.
func NewConsumptionHandler(svc consumptionService, logger *slog.Logger) *ConsumptionHandler {
	return &ConsumptionHandler{svc: svc, log: logger.With("handler", "consumption")}
}

type recordRequest struct {
	UserID  string   `json:"usuarioId"`
	Date    *string  `json:"fecha"`
	KWh     *float64 `json:"consumo"`
	CostUSD *float64 `json:"costo"`
	Device  *string  `json:"dispositivo"`
	Notes   *string  `json:"notas"`
}

type recordResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Reading readingResponse `json:"consumo"`
}

type historyResponse struct {
	Success  bool              `json:"success"`
	Readings []readingResponse `json:"consumos"`
	Total    int               `json:"total"`
}

// Create handles POST /api/consumo. A blank usuarioId means the caller.
func (h *ConsumptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, ok := h.bodyUser(w, r, req.UserID)
	if !ok {
		return
	}

	input := consumption.RecordInput{
		UserID:  userID,
		KWh:     req.KWh,
		CostUSD: req.CostUSD,
		Device:  req.Device,
		Notes:   req.Notes,
	}
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		date, err := parseDate("fecha", *req.Date)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		input.Date = &date
	}

	reading, err := h.svc.Record(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, recordResponse{
		Success: true,
		Message: "reading recorded",
		Reading: toReadingResponse(reading),
	})
}

// ListByUser handles GET /api/consumo/usuario/{usuarioId}?dias=.
func (h *ConsumptionHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUser(w, r)
	if !ok {
		return
	}
	days, err := queryInt(r, "dias")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	readings, err := h.svc.ListRecent(r.Context(), userID, days)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, historyResponse{
		Success:  true,
		Readings: toReadingResponses(readings),
		Total:    len(readings),
	})
}

func (h *ConsumptionHandler) bodyUser(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		id, ok := ctxutil.UserIDFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return uuid.Nil, false
		}
		return id, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("usuarioId", "must be a valid id"))
		return uuid.Nil, false
	}
	return ownUser(w, r, id)
}
