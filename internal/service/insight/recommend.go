package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
	"github.com/heartmarshall/energymonitor-backend/internal/service/insight/trend"
)

// Recommend evaluates the trend over the user's trailing days of readings
// and publishes the result. days <= 0 selects the configured default.
func (s *Service) Recommend(ctx context.Context, userID uuid.UUID, days int) (domain.Recommendation, error) {
	switch {
	case days <= 0:
		days = s.cfg.DefaultHistoryDays
	case days > s.cfg.MaxHistoryDays:
		days = s.cfg.MaxHistoryDays
	}
	from := s.now().AddDate(0, 0, -days)

	readings, err := s.readings.List(ctx, domain.ReadingFilter{UserID: userID, From: &from})
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("insight.Recommend: %w", err)
	}

	rec := trend.Evaluate(readings)
	s.publisher.PublishRecommendation(ctx, userID, rec)

	s.log.DebugContext(ctx, "recommendation computed",
		slog.String("user_id", userID.String()),
		slog.String("category", rec.Category.String()),
		slog.Int("readings", len(readings)))
	return rec, nil
}

// DemoResult is a generated history with its recommendation.
type DemoResult struct {
	Readings       []domain.Reading
	Recommendation domain.Recommendation
}

// Demo generates a synthetic history and evaluates it. Nothing is stored.
func (s *Service) Demo() DemoResult {
	readings := s.generator.Generate()
	return DemoResult{Readings: readings, Recommendation: trend.Evaluate(readings)}
}
