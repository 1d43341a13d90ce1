package inventory

// ApplyDelta calcula la nueva cantidad de un grupo: max(0, actual + delta).
// Un retiro mayor al disponible se absorbe en cero en lugar de fallar.
func ApplyDelta(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}
	return next
}

// DeltaTo devuelve el delta que lleva current a target (edición directa de stock).
func DeltaTo(current, target int) int {
	return target - current
}
