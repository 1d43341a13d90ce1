package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/bloodbank-api/internal/domain/inventory"
)

func TestApplyDelta_SumaYResta(t *testing.T) {
	assert.Equal(t, 12, inventory.ApplyDelta(10, 2))
	assert.Equal(t, 8, inventory.ApplyDelta(10, -2))
	assert.Equal(t, 10, inventory.ApplyDelta(10, 0))
}

func TestApplyDelta_NuncaNegativo(t *testing.T) {
	assert.Equal(t, 0, inventory.ApplyDelta(3, -5))
	assert.Equal(t, 0, inventory.ApplyDelta(0, -1))
}

// Para cualquier secuencia de deltas el resultado es >= 0 y coincide con aplicar
// el clamp paso a paso desde el valor inicial.
func TestApplyDelta_SecuenciaMantieneInvariante(t *testing.T) {
	sequences := [][]int{
		{5, -3, -10, 4},
		{-1, -1, 2},
		{1, 1, 1, -2},
		{0},
		{20, -7, -7, -7, 3},
	}
	for _, deltas := range sequences {
		q := 0
		expected := 0
		for _, d := range deltas {
			q = inventory.ApplyDelta(q, d)
			assert.GreaterOrEqual(t, q, 0)
			expected = max(0, expected+d)
		}
		assert.Equal(t, expected, q, "deltas %v", deltas)
	}
}

func TestDeltaTo(t *testing.T) {
	assert.Equal(t, 5, inventory.DeltaTo(10, 15))
	assert.Equal(t, -10, inventory.DeltaTo(10, 0))
	assert.Equal(t, 10, inventory.ApplyDelta(7, inventory.DeltaTo(7, 10)))
}
