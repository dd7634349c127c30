package domain

// Category classifies the latest reading against the trailing average.
// Values match the tokens the dashboard renders.
type Category string

const (
	CategorySavingsAlert Category = "ahorro"
	CategoryNeutral      Category = "neutral"
	CategoryExcellent    Category = "excelente"
)

func (c Category) String() string { return string(c) }

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	switch c {
	case CategorySavingsAlert, CategoryNeutral, CategoryExcellent:
		return true
	}
	return false
}

// Recommendation is the derived result of a trend evaluation. It is never
// persisted.
type Recommendation struct {
	Category      Category
	Message       string
	PercentChange float64
	Suggestions   []string
}
