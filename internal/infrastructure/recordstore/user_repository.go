package recordstore

import (
	"context"
	"strings"

	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre el Record Store.
type UserRepo struct {
	col *Collection[entity.User]
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(store repository.KeyValueStore) *UserRepo {
	return &UserRepo{col: NewCollection[entity.User](store, KeyUsers)}
}

// Create persiste un nuevo usuario. El email es único (sin distinguir mayúsculas).
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	return r.col.Add(ctx, *user, uniqueEmail(user))
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.col.GetByID(ctx, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.col.Find(ctx, func(u entity.User) bool { return strings.EqualFold(u.Email, email) })
}

// Update reemplaza el usuario; falla con ErrEmailAlreadyExists si el email lo usa otro.
func (r *UserRepo) Update(ctx context.Context, user *entity.User) (bool, error) {
	return r.col.Update(ctx, *user, uniqueEmail(user))
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(ctx context.Context) ([]entity.User, error) {
	return r.col.GetAll(ctx)
}

func uniqueEmail(user *entity.User) func(entity.User) error {
	return func(existing entity.User) error {
		if strings.EqualFold(existing.Email, user.Email) {
			return domain.ErrEmailAlreadyExists
		}
		return nil
	}
}
