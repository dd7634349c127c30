// Package synthetic produces plausible daily consumption histories for
// demos and seeding.
package synthetic

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

const (
	// Days is the length of a generated history.
	Days = 30

	// DefaultCostPerKWh is the flat tariff used when none is configured.
	DefaultCostPerKWh = 0.15

	baseKWh  = 15.0
	noiseMax = 3.0
	minKWh   = 8.0
	maxKWh   = 28.0

	highUsageKWh = 20.0
	lowUsageKWh  = 12.0
)

// Notes attached to generated readings.
const (
	NoteDefault   = "Daily meter reading"
	NoteHighUsage = "High usage, possibly heavy AC use"
	NoteLowUsage  = "Low usage, a good day for savings"
)

// Devices is the set of device labels a generated reading can carry.
var Devices = []string{
	"Air Conditioning",
	"Refrigerator",
	"Lighting",
	"Appliances",
	"Other",
}

// Source is the randomness a Generator draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source.
func WithSource(src Source) Option {
	return func(g *Generator) { g.rnd = src }
}

// WithClock sets the clock that determines the last generated day.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithCostPerKWh sets the tariff used to derive reading costs.
func WithCostPerKWh(rate float64) Option {
	return func(g *Generator) { g.rate = decimal.NewFromFloat(rate) }
}

// Generator builds synthetic histories. It is safe for concurrent use only
// if its Source is; the default source is.
type Generator struct {
	rnd  Source
	now  func() time.Time
	rate decimal.Decimal
}

// New creates a Generator. Without options it is unseeded, uses the wall
// clock and the default tariff.
func New(opts ...Option) *Generator {
	g := &Generator{
		rnd:  globalSource{},
		now:  time.Now,
		rate: decimal.NewFromFloat(DefaultCostPerKWh),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns Days readings, one per calendar day, oldest first, with
// the last one dated on the current day of the generator's clock.
// Readings carry no ID or user; callers assign them before persisting.
func (g *Generator) Generate() []domain.Reading {
	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	out := make([]domain.Reading, 0, Days)
	for i := Days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		out = append(out, g.reading(date))
	}
	return out
}

func (g *Generator) reading(date time.Time) domain.Reading {
	noise := g.rnd.Float64()*2*noiseMax - noiseMax
	raw := baseKWh + weekdayAdjustment(date.Weekday()) + noise
	clamped := min(max(raw, minKWh), maxKWh)
	kwh := RoundKWh(clamped)

	cost := g.Cost(kwh)
	device := Devices[g.rnd.IntN(len(Devices))]
	// Usage notes look at the value before rounding.
	note := noteFor(clamped)

	return domain.Reading{
		Date:    date,
		KWh:     kwh,
		CostUSD: &cost,
		Device:  &device,
		Notes:   &note,
	}
}

// Cost prices kwh at the generator's tariff, rounded to cents.
func (g *Generator) Cost(kwh float64) float64 {
	return decimal.NewFromFloat(kwh).Mul(g.rate).Round(2).InexactFloat64()
}

// RoundKWh rounds a consumption value to one decimal place.
func RoundKWh(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}

func weekdayAdjustment(d time.Weekday) float64 {
	switch d {
	case time.Saturday, time.Sunday:
		return 3
	case time.Friday:
		return 2
	case time.Monday:
		return 1
	default:
		return 0
	}
}

func noteFor(kwh float64) string {
	switch {
	case kwh > highUsageKWh:
		return NoteHighUsage
	case kwh < lowUsageKWh:
		return NoteLowUsage
	default:
		return NoteDefault
	}
}

// globalSource draws from the auto-seeded top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }
