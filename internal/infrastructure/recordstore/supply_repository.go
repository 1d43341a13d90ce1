package recordstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.SupplyRepository = (*SupplyRepo)(nil)

// SupplyRepo implementación de SupplyRepository sobre el Record Store.
type SupplyRepo struct {
	col *Collection[entity.BloodSupply]
}

// NewSupplyRepository construye el adaptador de entregas.
func NewSupplyRepository(store repository.KeyValueStore) *SupplyRepo {
	return &SupplyRepo{col: NewCollection[entity.BloodSupply](store, KeySupplies)}
}

// Create persiste la entrega; a lo sumo una por solicitud.
func (r *SupplyRepo) Create(ctx context.Context, s *entity.BloodSupply) error {
	return r.col.Add(ctx, *s, func(existing entity.BloodSupply) error {
		if existing.RequestID == s.RequestID {
			return fmt.Errorf("%w: ya existe una entrega para la solicitud %s", domain.ErrDuplicate, s.RequestID)
		}
		return nil
	})
}

func (r *SupplyRepo) GetByID(ctx context.Context, id string) (*entity.BloodSupply, error) {
	return r.col.GetByID(ctx, id)
}

func (r *SupplyRepo) GetByRequest(ctx context.Context, requestID string) (*entity.BloodSupply, error) {
	return r.col.Find(ctx, func(s entity.BloodSupply) bool { return s.RequestID == requestID })
}

func (r *SupplyRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

func (r *SupplyRepo) List(ctx context.Context) ([]entity.BloodSupply, error) {
	return r.col.GetAll(ctx)
}

func (r *SupplyRepo) ListByUser(ctx context.Context, userID string) ([]entity.BloodSupply, error) {
	return r.col.Filter(ctx, func(s entity.BloodSupply) bool { return s.UserID == userID })
}
