package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
	"github.com/heartmarshall/energymonitor-backend/internal/service/insight/trend"
)

const daysPerWeek = 7

// Weekly breaks the user's last weeks of readings into 7-day windows ending
// today. weeks <= 0 selects the configured default; larger values are capped.
func (s *Service) Weekly(ctx context.Context, userID uuid.UUID, weeks int) (domain.WeeklyReport, error) {
	switch {
	case weeks <= 0:
		weeks = s.cfg.DefaultWeeks
	case weeks > s.cfg.MaxWeeks:
		weeks = s.cfg.MaxWeeks
	}

	today := startOfDay(s.now())
	from := today.AddDate(0, 0, -daysPerWeek*weeks+1)

	readings, err := s.readings.List(ctx, domain.ReadingFilter{UserID: userID, From: &from})
	if err != nil {
		return domain.WeeklyReport{}, fmt.Errorf("insight.Weekly: %w", err)
	}

	return BuildWeekly(readings, today, weeks), nil
}

// BuildWeekly buckets readings into weeks windows of seven calendar days.
// The newest window ends on today's date; windows are returned oldest first.
// Readings outside every window are ignored.
func BuildWeekly(readings []domain.Reading, today time.Time, weeks int) domain.WeeklyReport {
	today = startOfDay(today)
	out := make([]domain.WeekStats, weeks)

	for i := range weeks {
		// i counts back from the newest window.
		end := today.AddDate(0, 0, -daysPerWeek*i)
		start := end.AddDate(0, 0, -daysPerWeek+1)
		out[weeks-1-i] = domain.WeekStats{Number: weeks - i, Start: start, End: end}
	}

	for _, r := range readings {
		day := startOfDay(r.Date.In(today.Location()))
		offset := int(today.Sub(day).Hours()/24+0.5) / daysPerWeek
		if day.After(today) || offset >= weeks {
			continue
		}
		w := &out[weeks-1-offset]
		w.TotalKWh += r.KWh
		w.TotalCostUSD += r.Cost()
		w.Days++
	}

	var sumAvg float64
	for i := range out {
		w := &out[i]
		if w.Days > 0 {
			w.AverageKWh = w.TotalKWh / float64(w.Days)
		}
		sumAvg += w.AverageKWh
	}
	overall := 0.0
	if weeks > 0 {
		overall = sumAvg / float64(weeks)
	}

	for i := range out {
		w := &out[i]
		if overall > 0 {
			w.PercentOfAverage = round(w.AverageKWh/overall*100, 1)
		}
		w.Efficiency = domain.EfficiencyImprovable
		if w.AverageKWh <= overall {
			w.Efficiency = domain.EfficiencyEfficient
		}
		w.TotalKWh = round(w.TotalKWh, 2)
		w.TotalCostUSD = round(w.TotalCostUSD, 2)
		w.AverageKWh = round(w.AverageKWh, 2)
	}

	report := domain.WeeklyReport{Weeks: out, AverageKWh: round(overall, 2)}
	if weeks > 1 {
		oldest, newest := out[0], out[weeks-1]
		report.ConsumptionTrend = round(trend.PercentChange(newest.TotalKWh, oldest.TotalKWh), 1)
		report.CostTrend = round(trend.PercentChange(newest.TotalCostUSD, oldest.TotalCostUSD), 1)
	}
	return report
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
