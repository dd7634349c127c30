// Package consumption implements the daily reading repository using PostgreSQL.
package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/adapter/postgres"
	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

const table = "consumption_readings"

var columns = []string{"id", "user_id", "date", "consumption_kwh", "cost_usd", "device", "notes", "created_at"}

// Repo provides reading persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new consumption repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Date      time.Time `db:"date"`
	KWh       float64   `db:"consumption_kwh"`
	CostUSD   *float64  `db:"cost_usd"`
	Device    *string   `db:"device"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Reading {
	return domain.Reading{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date,
		KWh:       r.KWh,
		CostUSD:   r.CostUSD,
		Device:    r.Device,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
	}
}

// Create inserts a single reading. An unknown user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, rd domain.Reading) (domain.Reading, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rd.ID, rd.UserID, rd.Date, rd.KWh, rd.CostUSD, rd.Device, rd.Notes, rd.CreatedAt).
		Suffix("RETURNING id, user_id, date, consumption_kwh, cost_usd, device, notes, created_at").
		ToSql()
	if err != nil {
		return domain.Reading{}, fmt.Errorf("build insert reading: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return domain.Reading{}, postgres.MapError(err, "user", rd.UserID)
	}
	return out.toDomain(), nil
}

// CreateBatch inserts readings in one statement and returns the number of
// rows written.
func (r *Repo) CreateBatch(ctx context.Context, readings []domain.Reading) (int, error) {
	if len(readings) == 0 {
		return 0, nil
	}

	b := postgres.Builder().Insert(table).Columns(columns...)
	for _, rd := range readings {
		b = b.Values(rd.ID, rd.UserID, rd.Date, rd.KWh, rd.CostUSD, rd.Device, rd.Notes, rd.CreatedAt)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build batch insert readings: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "user", readings[0].UserID)
	}
	return int(tag.RowsAffected()), nil
}

// List returns the readings matching f, oldest first.
func (r *Repo) List(ctx context.Context, f domain.ReadingFilter) ([]domain.Reading, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where(f)).
		OrderBy("date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select readings: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "readings of user", f.UserID)
	}

	out := make([]domain.Reading, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

type summaryRow struct {
	Count    int     `db:"count"`
	TotalKWh float64 `db:"total_kwh"`
	TotalUSD float64 `db:"total_cost"`
	AvgKWh   float64 `db:"avg_kwh"`
	MaxKWh   float64 `db:"max_kwh"`
	MinKWh   float64 `db:"min_kwh"`
}

// Summarize aggregates the readings matching f. An empty set yields a zero
// Summary.
func (r *Repo) Summarize(ctx context.Context, f domain.ReadingFilter) (domain.Summary, error) {
	query, args, err := postgres.Builder().
		Select(
			"COUNT(*) AS count",
			"COALESCE(SUM(consumption_kwh), 0) AS total_kwh",
			"COALESCE(SUM(cost_usd), 0) AS total_cost",
			"COALESCE(AVG(consumption_kwh), 0) AS avg_kwh",
			"COALESCE(MAX(consumption_kwh), 0) AS max_kwh",
			"COALESCE(MIN(consumption_kwh), 0) AS min_kwh",
		).
		From(table).
		Where(where(f)).
		ToSql()
	if err != nil {
		return domain.Summary{}, fmt.Errorf("build summarize readings: %w", err)
	}

	var s summaryRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &s, query, args...); err != nil {
		return domain.Summary{}, postgres.MapError(err, "readings of user", f.UserID)
	}
	return domain.Summary{
		Count:        s.Count,
		TotalKWh:     s.TotalKWh,
		TotalCostUSD: s.TotalUSD,
		AverageKWh:   s.AvgKWh,
		MaxKWh:       s.MaxKWh,
		MinKWh:       s.MinKWh,
	}, nil
}

func where(f domain.ReadingFilter) squirrel.And {
	cond := squirrel.And{squirrel.Eq{"user_id": f.UserID}}
	if f.From != nil {
		cond = append(cond, squirrel.GtOrEq{"date": *f.From})
	}
	if f.To != nil {
		cond = append(cond, squirrel.LtOrEq{"date": *f.To})
	}
	if f.Device != nil {
		cond = append(cond, squirrel.Eq{"device": *f.Device})
	}
	return cond
}
