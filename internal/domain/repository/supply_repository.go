package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// SupplyRepository puerto de persistencia para entregas de sangre.
type SupplyRepository interface {
	Create(ctx context.Context, supply *entity.BloodSupply) error
	GetByID(ctx context.Context, id string) (*entity.BloodSupply, error)
	GetByRequest(ctx context.Context, requestID string) (*entity.BloodSupply, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entity.BloodSupply, error)
	ListByUser(ctx context.Context, userID string) ([]entity.BloodSupply, error)
}
