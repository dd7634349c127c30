package consumption

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/energymonitor-backend/internal/domain"
)

// RecordInput holds one reading as submitted by the dashboard.
// Nil Date means now; nil CostUSD is derived from the tariff.
type RecordInput struct {
	UserID  uuid.UUID
	Date    *time.Time
	KWh     *float64
	CostUSD *float64
	Device  *string
	Notes   *string
}

func (i *RecordInput) normalize() {
	i.Device = domain.OptionalText(i.Device)
	i.Notes = domain.OptionalText(i.Notes)
}

// Validate checks the reading fields. Call after normalization.
func (i RecordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "usuarioId", Message: "required"})
	}

	switch {
	case i.KWh == nil:
		errs = append(errs, domain.FieldError{Field: "consumo", Message: "required"})
	case !finite(*i.KWh):
		errs = append(errs, domain.FieldError{Field: "consumo", Message: "must be a number"})
	case *i.KWh < 0:
		errs = append(errs, domain.FieldError{Field: "consumo", Message: "must not be negative"})
	}

	if i.CostUSD != nil {
		if !finite(*i.CostUSD) {
			errs = append(errs, domain.FieldError{Field: "costo", Message: "must be a number"})
		} else if *i.CostUSD < 0 {
			errs = append(errs, domain.FieldError{Field: "costo", Message: "must not be negative"})
		}
	}

	if i.Device != nil && len([]rune(*i.Device)) > domain.MaxDeviceLength {
		errs = append(errs, domain.FieldError{Field: "dispositivo", Message: "too long"})
	}
	if i.Notes != nil && len([]rune(*i.Notes)) > domain.MaxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notas", Message: "too long"})
	}

	return domain.NewValidationErrors(errs)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
