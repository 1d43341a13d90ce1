package repository

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// AdminRepository puerto de persistencia para Admin.
type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	List(ctx context.Context) ([]entity.Admin, error)
}
