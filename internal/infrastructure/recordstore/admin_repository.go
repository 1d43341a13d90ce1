package recordstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación de AdminRepository sobre el Record Store.
type AdminRepo struct {
	col *Collection[entity.Admin]
}

// NewAdminRepository construye el adaptador de administradores.
func NewAdminRepository(store repository.KeyValueStore) *AdminRepo {
	return &AdminRepo{col: NewCollection[entity.Admin](store, KeyAdmins)}
}

// Create persiste un admin; el username es único.
func (r *AdminRepo) Create(ctx context.Context, admin *entity.Admin) error {
	return r.col.Add(ctx, *admin, func(existing entity.Admin) error {
		if existing.Username == admin.Username {
			return fmt.Errorf("%w: username %s", domain.ErrDuplicate, admin.Username)
		}
		return nil
	})
}

func (r *AdminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	return r.col.GetByID(ctx, id)
}

// GetByUsername búsqueda exacta por username.
func (r *AdminRepo) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	return r.col.Find(ctx, func(a entity.Admin) bool { return a.Username == username })
}

func (r *AdminRepo) List(ctx context.Context) ([]entity.Admin, error) {
	return r.col.GetAll(ctx)
}
