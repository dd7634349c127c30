package consumption

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/energymonitor-backend/internal/config"
	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// readingRepo defines the reading repository interface needed by consumption service.
type readingRepo interface {
	Create(ctx context.Context, r domain.Reading) (domain.Reading, error)
	CreateBatch(ctx context.Context, readings []domain.Reading) (int, error)
	List(ctx context.Context, f domain.ReadingFilter) ([]domain.Reading, error)
}

// txManager defines the transaction manager interface needed by consumption service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// publisher announces stored readings.
type publisher interface {
	PublishReading(ctx context.Context, r domain.Reading)
}

// generator produces a synthetic history.
type generator interface {
	Generate() []domain.Reading
}

// Service records and lists daily readings.
type Service struct {
	log       *slog.Logger
	readings  readingRepo
	tx        txManager
	publisher publisher
	generator generator
	cfg       config.InsightConfig
	rate      decimal.Decimal
	now       func() time.Time
}

// NewService creates a new consumption service instance.
func NewService(
	logger *slog.Logger,
	readings readingRepo,
	tx txManager,
	pub publisher,
	gen generator,
	cfg config.InsightConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "consumption"),
		readings:  readings,
		tx:        tx,
		publisher: pub,
		generator: gen,
		cfg:       cfg,
		rate:      decimal.NewFromFloat(cfg.CostPerKWh),
		now:       time.Now,
	}
}

// costOf applies the configured tariff, rounded to cents.
func (s *Service) costOf(kwh float64) float64 {
	v, _ := decimal.NewFromFloat(kwh).Mul(s.rate).Round(2).Float64()
	return v
}
