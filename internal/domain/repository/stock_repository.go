package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar el stock por grupo sanguíneo.
type StockRepository interface {
	List(ctx context.Context) ([]entity.BloodStock, error)
	GetByGroup(ctx context.Context, group entity.BloodGroup) (*entity.BloodStock, error)
	Create(ctx context.Context, stock *entity.BloodStock) error
	Update(ctx context.Context, stock *entity.BloodStock) (bool, error)
	// Mutate aplica fn a la fila del grupo de forma atómica respecto de otras mutaciones.
	// Devuelve (nil, nil) si el grupo no tiene fila.
	Mutate(ctx context.Context, group entity.BloodGroup, fn func(*entity.BloodStock) error) (*entity.BloodStock, error)
}
