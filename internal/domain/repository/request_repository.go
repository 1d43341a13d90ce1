package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// RequestRepository puerto de persistencia para solicitudes de sangre.
type RequestRepository interface {
	Create(ctx context.Context, req *entity.BloodRequest) error
	GetByID(ctx context.Context, id string) (*entity.BloodRequest, error)
	Update(ctx context.Context, req *entity.BloodRequest) (bool, error)
	// UpdateIfStatus reemplaza la solicitud solo si la almacenada sigue en expected.
	// Si cambió devuelve *domain.InvalidTransitionError; (false, nil) si no existe.
	UpdateIfStatus(ctx context.Context, req *entity.BloodRequest, expected entity.RequestStatus) (bool, error)
	List(ctx context.Context) ([]entity.BloodRequest, error)
	ListByUser(ctx context.Context, userID string) ([]entity.BloodRequest, error)
	ListByStatus(ctx context.Context, status entity.RequestStatus) ([]entity.BloodRequest, error)
}
