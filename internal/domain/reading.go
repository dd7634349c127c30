package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits for consumption readings.
const (
	MaxDeviceLength = 200
	MaxNotesLength  = 1000
)

// Reading is one daily consumption record. Readings are immutable once
// stored; analysis code expects slices sorted by Date ascending.
type Reading struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	KWh       float64
	CostUSD   *float64
	Device    *string
	Notes     *string
	CreatedAt time.Time
}

// Cost returns the recorded cost, or 0 when none was recorded.
func (r Reading) Cost() float64 {
	if r.CostUSD == nil {
		return 0
	}
	return *r.CostUSD
}

// ReadingFilter narrows the readings returned by the repository.
// Zero values mean "no constraint".
type ReadingFilter struct {
	UserID uuid.UUID
	From   *time.Time
	To     *time.Time
	Device *string
}
