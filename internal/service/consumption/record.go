package consumption

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// Record validates and stores one reading, then publishes it.
// An unknown user yields ErrNotFound.
func (s *Service) Record(ctx context.Context, input RecordInput) (domain.Reading, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return domain.Reading{}, err
	}

	now := s.now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	cost := input.CostUSD
	if cost == nil {
		derived := s.costOf(*input.KWh)
		cost = &derived
	}

	stored, err := s.readings.Create(ctx, domain.Reading{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Date:      date,
		KWh:       *input.KWh,
		CostUSD:   cost,
		Device:    input.Device,
		Notes:     input.Notes,
		CreatedAt: now,
	})
	if err != nil {
		return domain.Reading{}, fmt.Errorf("consumption.Record: %w", err)
	}

	s.publisher.PublishReading(ctx, stored)
	s.log.InfoContext(ctx, "reading recorded",
		slog.String("user_id", stored.UserID.String()),
		slog.Float64("kwh", stored.KWh))

	return stored, nil
}

// ListRecent returns the user's readings of the trailing days, oldest first.
// days <= 0 selects the configured default; larger values are capped.
func (s *Service) ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.Reading, error) {
	from := s.now().AddDate(0, 0, -s.clampDays(days))

	readings, err := s.readings.List(ctx, domain.ReadingFilter{UserID: userID, From: &from})
	if err != nil {
		return nil, fmt.Errorf("consumption.ListRecent: %w", err)
	}
	return readings, nil
}

func (s *Service) clampDays(days int) int {
	switch {
	case days <= 0:
		return s.cfg.DefaultHistoryDays
	case days > s.cfg.MaxHistoryDays:
		return s.cfg.MaxHistoryDays
	}
	return days
}

// SeedSynthetic stores one generated history for the user in a single
// transaction and returns the number of readings written.
func (s *Service) SeedSynthetic(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, domain.NewValidationError("usuarioId", "required")
	}

	now := s.now()
	history := s.generator.Generate()
	for i := range history {
		history[i].ID = uuid.New()
		history[i].UserID = userID
		history[i].CreatedAt = now
	}

	var n int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.readings.CreateBatch(txCtx, history)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("consumption.SeedSynthetic: %w", err)
	}

	s.log.InfoContext(ctx, "synthetic history seeded",
		slog.String("user_id", userID.String()),
		slog.Int("readings", n))
	return n, nil
}
