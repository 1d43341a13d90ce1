package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// DonationRepository puerto de persistencia para donaciones.
type DonationRepository interface {
	Create(ctx context.Context, donation *entity.Donation) error
	GetByID(ctx context.Context, id string) (*entity.Donation, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]entity.Donation, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Donation, error)
}
