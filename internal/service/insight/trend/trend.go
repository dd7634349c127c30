// Package trend classifies the latest daily reading against the trailing
// seven-day average.
package trend

import (
	"fmt"
	"math"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

const (
	// Window is the number of trailing readings the rule looks at.
	Window = 7

	// SavingsAlertThreshold and ExcellentThreshold bound the neutral band,
	// in percent change of the latest reading over the window average.
	SavingsAlertThreshold = 15.0
	ExcellentThreshold    = -10.0
)

const (
	msgInsufficient = "We need more data to generate accurate recommendations"
	msgStable       = "Your consumption is holding steady"
)

var (
	insufficientSuggestions = []string{
		"Keep recording your daily consumption to receive personalized suggestions",
	}
	savingsSuggestions = []string{
		"Check appliances that may be drawing more energy than usual",
		"Consider using timers on your devices",
		"Make sure there are no energy leaks in your home",
		"Optimize your use of air conditioning and heating",
	}
	excellentSuggestions = []string{
		"Keep it up! You are applying good practices",
		"Consider sharing your saving strategies",
		"Keep monitoring your consumption regularly",
		"Check whether you can optimize even further",
	}
	neutralSuggestions = []string{
		"Keep monitoring your daily consumption",
		"Consider small efficiency improvements",
		"Keep up your good energy habits",
	}
)

// Evaluate returns the recommendation for a chronologically ascending
// series of readings. Only the last Window readings are considered.
//
// Fewer than Window readings yield a neutral recommendation asking for
// more data. A window averaging zero kWh is treated as stable.
func Evaluate(readings []domain.Reading) domain.Recommendation {
	if len(readings) < Window {
		return domain.Recommendation{
			Category:      domain.CategoryNeutral,
			Message:       msgInsufficient,
			PercentChange: 0,
			Suggestions:   clone(insufficientSuggestions),
		}
	}

	window := readings[len(readings)-Window:]
	latest := window[len(window)-1].KWh

	var sum float64
	for _, r := range window {
		sum += r.KWh
	}
	average := sum / Window

	pct := PercentChange(latest, average)

	switch {
	case pct > SavingsAlertThreshold:
		return domain.Recommendation{
			Category:      domain.CategorySavingsAlert,
			Message:       fmt.Sprintf("Heads up! Your consumption rose %.1f%%", pct),
			PercentChange: pct,
			Suggestions:   clone(savingsSuggestions),
		}
	case pct < ExcellentThreshold:
		return domain.Recommendation{
			Category:      domain.CategoryExcellent,
			Message:       fmt.Sprintf("Excellent! Your consumption dropped %.1f%%", math.Abs(pct)),
			PercentChange: pct,
			Suggestions:   clone(excellentSuggestions),
		}
	default:
		return domain.Recommendation{
			Category:      domain.CategoryNeutral,
			Message:       msgStable,
			PercentChange: pct,
			Suggestions:   clone(neutralSuggestions),
		}
	}
}

// PercentChange returns (value - base) / base * 100, or 0 when base is 0.
func PercentChange(value, base float64) float64 {
	if base == 0 {
		return 0
	}
	return (value - base) / base * 100
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
