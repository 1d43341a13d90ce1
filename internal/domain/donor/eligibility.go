// Package donor contiene reglas de elegibilidad para donantes.
package donor

import (
	"time"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// DonationIntervalMonths meses que deben pasar entre donaciones.
const DonationIntervalMonths = 3

// Eligibility resultado del cálculo de elegibilidad de un donante.
type Eligibility struct {
	LastDonation  *time.Time
	NextEligible  *time.Time
	CanDonate     bool
	DaysRemaining int
}

// Evaluate calcula la próxima fecha de donación: última donación + 3 meses calendario.
// Sin donaciones previas el donante es elegible de inmediato.
func Evaluate(donations []entity.Donation, now time.Time) Eligibility {
	if len(donations) == 0 {
		return Eligibility{CanDonate: true}
	}
	last := donations[0].Date
	for _, d := range donations[1:] {
		if d.Date.After(last) {
			last = d.Date
		}
	}
	next := last.AddDate(0, DonationIntervalMonths, 0)
	days := int(next.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return Eligibility{
		LastDonation:  &last,
		NextEligible:  &next,
		CanDonate:     !next.After(now),
		DaysRemaining: days,
	}
}
