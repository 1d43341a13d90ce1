package donor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bloodbank-api/internal/domain/donor"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

var now = time.Date(2026, time.May, 15, 12, 0, 0, 0, time.UTC)

func TestEvaluate_SinDonacionesEsElegible(t *testing.T) {
	e := donor.Evaluate(nil, now)
	assert.True(t, e.CanDonate)
	assert.Nil(t, e.NextEligible)
	assert.Equal(t, 0, e.DaysRemaining)
}

func TestEvaluate_DonacionRecienteNoElegible(t *testing.T) {
	donations := []entity.Donation{
		{Date: time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)},
		{Date: time.Date(2026, time.April, 15, 12, 0, 0, 0, time.UTC)},
	}
	e := donor.Evaluate(donations, now)
	require.NotNil(t, e.NextEligible)
	assert.False(t, e.CanDonate)
	assert.Equal(t, time.Date(2026, time.July, 15, 12, 0, 0, 0, time.UTC), *e.NextEligible)
	assert.Equal(t, 61, e.DaysRemaining)
}

func TestEvaluate_DonacionAntiguaElegible(t *testing.T) {
	donations := []entity.Donation{{Date: time.Date(2026, time.February, 15, 12, 0, 0, 0, time.UTC)}}
	e := donor.Evaluate(donations, now)
	assert.True(t, e.CanDonate, "exactamente 3 meses después ya puede donar")
	assert.Equal(t, 0, e.DaysRemaining)
}
