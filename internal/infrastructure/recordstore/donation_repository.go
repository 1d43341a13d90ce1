package recordstore

import (
	"context"

	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

var _ repository.DonationRepository = (*DonationRepo)(nil)

// DonationRepo implementación de DonationRepository sobre el Record Store.
type DonationRepo struct {
	col *Collection[entity.Donation]
}

// NewDonationRepository construye el adaptador de donaciones.
func NewDonationRepository(store repository.KeyValueStore) *DonationRepo {
	return &DonationRepo{col: NewCollection[entity.Donation](store, KeyDonations)}
}

func (r *DonationRepo) Create(ctx context.Context, d *entity.Donation) error {
	return r.col.Add(ctx, *d)
}

func (r *DonationRepo) GetByID(ctx context.Context, id string) (*entity.Donation, error) {
	return r.col.GetByID(ctx, id)
}

func (r *DonationRepo) Delete(ctx context.Context, id string) (bool, error) {
	return r.col.Delete(ctx, id)
}

func (r *DonationRepo) List(ctx context.Context) ([]entity.Donation, error) {
	return r.col.GetAll(ctx)
}

// ListByUser donaciones de un donante.
func (r *DonationRepo) ListByUser(ctx context.Context, userID string) ([]entity.Donation, error) {
	return r.col.Filter(ctx, func(d entity.Donation) bool { return d.UserID == userID })
}
