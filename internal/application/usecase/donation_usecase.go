package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/donor"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// DonationUseCase registra donaciones y mantiene el stock en sincronía con ellas.
type DonationUseCase struct {
	repo     repository.DonationRepository
	userRepo repository.UserRepository
	ledger   ports.StockLedger
	clock    ports.Clock
	ids      ports.IDGenerator
	log      *logger.Logger
}

// NewDonationUseCase construye el caso de uso.
func NewDonationUseCase(
	repo repository.DonationRepository,
	userRepo repository.UserRepository,
	ledger ports.StockLedger,
	clock ports.Clock,
	ids ports.IDGenerator,
	log *logger.Logger,
) *DonationUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &DonationUseCase{
		repo:     repo,
		userRepo: userRepo,
		ledger:   ledger,
		clock:    clock,
		ids:      ids,
		log:      log.Component("donations"),
	}
}

// Record registra la donación de un donante y suma la cantidad al stock de su grupo.
// Si el stock no se puede actualizar la donación se elimina.
func (uc *DonationUseCase) Record(ctx context.Context, in dto.RecordDonationInput) (*entity.Donation, error) {
	if in.Quantity < 1 {
		return nil, domain.Invalid("quantity", "debe ser al menos 1")
	}
	center := strings.TrimSpace(in.CollectionCenter)
	if center == "" {
		return nil, domain.Invalid("collectionCenter", "requerido")
	}
	user, err := uc.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsDonor {
		return nil, domain.Invalid("userId", "el usuario no es donante")
	}

	now := uc.clock.Now()
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = in.Date.UTC()
	}
	d := &entity.Donation{
		ID:               uc.ids.NewID(),
		UserID:           user.ID,
		Date:             date,
		BloodGroup:       user.BloodGroup,
		Quantity:         in.Quantity,
		Notes:            strings.TrimSpace(in.Notes),
		CreatedAt:        now,
		CollectionCenter: center,
	}
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	if _, err := uc.ledger.ApplyDelta(ctx, d.BloodGroup, d.Quantity); err != nil {
		if _, derr := uc.repo.Delete(context.WithoutCancel(ctx), d.ID); derr != nil {
			uc.log.Error().Err(derr).Str("donation_id", d.ID).Msg("no se pudo deshacer la donación")
		}
		return nil, fmt.Errorf("sumar donación %s al stock: %w", d.ID, err)
	}
	uc.log.Info().Str("donation_id", d.ID).Str("user_id", d.UserID).
		Str("blood_group", string(d.BloodGroup)).Int("quantity", d.Quantity).Msg("donación registrada")
	return d, nil
}

// Delete elimina la donación y descuenta su cantidad del stock (recortado en 0).
func (uc *DonationUseCase) Delete(ctx context.Context, id string) error {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return fmt.Errorf("%w: donación %s", domain.ErrNotFound, id)
	}
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: donación %s", domain.ErrNotFound, id)
	}
	if _, err := uc.ledger.ApplyDelta(ctx, d.BloodGroup, -d.Quantity); err != nil {
		if cerr := uc.repo.Create(context.WithoutCancel(ctx), d); cerr != nil {
			uc.log.Error().Err(cerr).Str("donation_id", id).Msg("no se pudo restaurar la donación")
		}
		return fmt.Errorf("revertir donación %s del stock: %w", id, err)
	}
	uc.log.Info().Str("donation_id", id).Str("blood_group", string(d.BloodGroup)).
		Int("quantity", d.Quantity).Msg("donación eliminada")
	return nil
}

// List todas las donaciones, más recientes primero.
func (uc *DonationUseCase) List(ctx context.Context) ([]entity.Donation, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortDonations(list)
	return list, nil
}

// ListByUser donaciones de un donante, más recientes primero.
func (uc *DonationUseCase) ListByUser(ctx context.Context, userID string) ([]entity.Donation, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortDonations(list)
	return list, nil
}

// Eligibility próxima fecha de donación del usuario respecto del reloj.
func (uc *DonationUseCase) Eligibility(ctx context.Context, userID string) (*dto.EligibilityDTO, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	e := donor.Evaluate(list, uc.clock.Now())
	return &dto.EligibilityDTO{
		LastDonation:  e.LastDonation,
		NextEligible:  e.NextEligible,
		CanDonate:     e.CanDonate,
		DaysRemaining: e.DaysRemaining,
	}, nil
}

func sortDonations(list []entity.Donation) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
}
