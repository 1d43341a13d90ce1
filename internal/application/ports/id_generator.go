package ports

// IDGenerator genera identificadores únicos para nuevos registros.
type IDGenerator interface {
	NewID() string
}
