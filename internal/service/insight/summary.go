package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// SummaryQuery selects the readings to aggregate. Nil fields are unconstrained.
type SummaryQuery struct {
	UserID uuid.UUID
	Device *string
	From   *time.Time
	To     *time.Time
}

// Summarize aggregates the user's readings matching q. An empty set yields
// a zero summary.
func (s *Service) Summarize(ctx context.Context, q SummaryQuery) (domain.Summary, error) {
	device := domain.OptionalText(q.Device)
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return domain.Summary{}, domain.NewValidationError("desde", "must not be after hasta")
	}

	sum, err := s.readings.Summarize(ctx, domain.ReadingFilter{
		UserID: q.UserID,
		From:   q.From,
		To:     q.To,
		Device: device,
	})
	if err != nil {
		return domain.Summary{}, fmt.Errorf("insight.Summarize: %w", err)
	}

	sum.TotalKWh = round(sum.TotalKWh, 2)
	sum.TotalCostUSD = round(sum.TotalCostUSD, 2)
	sum.AverageKWh = round(sum.AverageKWh, 2)
	return sum, nil
}

func round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
