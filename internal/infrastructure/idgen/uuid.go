package idgen

import (
	"github.com/google/uuid"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
)

var _ ports.IDGenerator = UUID{}

// UUID genera identificadores UUID v4.
type UUID struct{}

func (UUID) NewID() string { return uuid.New().String() }
