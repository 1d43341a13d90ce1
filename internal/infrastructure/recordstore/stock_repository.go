package recordstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository: una fila por grupo sanguíneo.
type StockRepo struct {
	col *Collection[entity.BloodStock]
}

// NewStockRepository construye el adaptador de stock.
func NewStockRepository(store repository.KeyValueStore) *StockRepo {
	return &StockRepo{col: NewCollection[entity.BloodStock](store, KeyStock)}
}

func (r *StockRepo) List(ctx context.Context) ([]entity.BloodStock, error) {
	return r.col.GetAll(ctx)
}

// GetByGroup obtiene la fila de un grupo o (nil, nil).
func (r *StockRepo) GetByGroup(ctx context.Context, group entity.BloodGroup) (*entity.BloodStock, error) {
	return r.col.Find(ctx, func(s entity.BloodStock) bool { return s.BloodGroup == group })
}

// Create agrega la fila de un grupo; no puede haber dos filas del mismo grupo.
func (r *StockRepo) Create(ctx context.Context, stock *entity.BloodStock) error {
	return r.col.Add(ctx, *stock, func(existing entity.BloodStock) error {
		if existing.BloodGroup == stock.BloodGroup {
			return fmt.Errorf("%w: stock %s", domain.ErrDuplicate, stock.BloodGroup)
		}
		return nil
	})
}

func (r *StockRepo) Update(ctx context.Context, stock *entity.BloodStock) (bool, error) {
	return r.col.Update(ctx, *stock)
}

// Mutate lectura-modificación-escritura de la fila del grupo bajo el lock de la colección.
func (r *StockRepo) Mutate(ctx context.Context, group entity.BloodGroup, fn func(*entity.BloodStock) error) (*entity.BloodStock, error) {
	return r.col.Mutate(ctx, func(s entity.BloodStock) bool { return s.BloodGroup == group }, func(s *entity.BloodStock) error {
		if err := fn(s); err != nil {
			return err
		}
		if s.BloodGroup != group {
			return fmt.Errorf("%w: stock %s no admite cambiar de grupo", domain.ErrInvalidInput, group)
		}
		return nil
	})
}
