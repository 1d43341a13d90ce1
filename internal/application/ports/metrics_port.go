package ports

// Recorder puerto para métricas de negocio. Las implementaciones no deben bloquear.
type Recorder interface {
	RequestTransition(status string)
	StockDelta(bloodGroup string, delta int)
	StockLevel(bloodGroup string, quantity int)
}

// NopRecorder descarta todas las métricas.
type NopRecorder struct{}

func (NopRecorder) RequestTransition(string) {}
func (NopRecorder) StockDelta(string, int)   {}
func (NopRecorder) StockLevel(string, int)   {}
