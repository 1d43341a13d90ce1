package recordstore

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.RequestRepository = (*RequestRepo)(nil)

// RequestRepo implementación de RequestRepository sobre el Record Store.
type RequestRepo struct {
	col *Collection[entity.BloodRequest]
}

// NewRequestRepository construye el adaptador de solicitudes.
func NewRequestRepository(store repository.KeyValueStore) *RequestRepo {
	return &RequestRepo{col: NewCollection[entity.BloodRequest](store, KeyRequests)}
}

func (r *RequestRepo) Create(ctx context.Context, req *entity.BloodRequest) error {
	return r.col.Add(ctx, *req)
}

func (r *RequestRepo) GetByID(ctx context.Context, id string) (*entity.BloodRequest, error) {
	return r.col.GetByID(ctx, id)
}

func (r *RequestRepo) Update(ctx context.Context, req *entity.BloodRequest) (bool, error) {
	return r.col.Update(ctx, *req)
}

// UpdateIfStatus compara el estado almacenado y escribe dentro del mismo lock.
func (r *RequestRepo) UpdateIfStatus(ctx context.Context, req *entity.BloodRequest, expected entity.RequestStatus) (bool, error) {
	updated, err := r.col.Mutate(ctx, func(stored entity.BloodRequest) bool { return stored.ID == req.ID }, func(stored *entity.BloodRequest) error {
		if stored.Status != expected {
			return &domain.InvalidTransitionError{Current: string(stored.Status), Attempted: string(req.Status)}
		}
		*stored = *req
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated != nil, nil
}

func (r *RequestRepo) List(ctx context.Context) ([]entity.BloodRequest, error) {
	return r.col.GetAll(ctx)
}

func (r *RequestRepo) ListByUser(ctx context.Context, userID string) ([]entity.BloodRequest, error) {
	return r.col.Filter(ctx, func(req entity.BloodRequest) bool { return req.UserID == userID })
}

// ListByStatus p. ej. las pendientes para el dashboard admin.
func (r *RequestRepo) ListByStatus(ctx context.Context, status entity.RequestStatus) ([]entity.BloodRequest, error) {
	return r.col.Filter(ctx, func(req entity.BloodRequest) bool { return req.Status == status })
}
