// Package insight derives recommendations, summaries and weekly breakdowns
// from a user's readings.
package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/config"
	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// readingRepo defines the reading repository interface needed by insight service.
type readingRepo interface {
	List(ctx context.Context, f domain.ReadingFilter) ([]domain.Reading, error)
	Summarize(ctx context.Context, f domain.ReadingFilter) (domain.Summary, error)
}

// publisher announces computed recommendations.
type publisher interface {
	PublishRecommendation(ctx context.Context, userID uuid.UUID, rec domain.Recommendation)
}

// generator produces a synthetic history.
type generator interface {
	Generate() []domain.Reading
}

// Service implements the analysis operations.
type Service struct {
	log       *slog.Logger
	readings  readingRepo
	publisher publisher
	generator generator
	cfg       config.InsightConfig
	now       func() time.Time
}

// NewService creates a new insight service instance.
func NewService(
	logger *slog.Logger,
	readings readingRepo,
	pub publisher,
	gen generator,
	cfg config.InsightConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "insight"),
		readings:  readings,
		publisher: pub,
		generator: gen,
		cfg:       cfg,
		now:       time.Now,
	}
}
