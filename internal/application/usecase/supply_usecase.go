package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

// SupplyUseCase lectura de entregas y generación del comprobante PDF.
// Las entregas solo se crean al cumplir una solicitud.
type SupplyUseCase struct {
	repo        repository.SupplyRepository
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	renderer    ports.ReceiptRenderer
}

// NewSupplyUseCase construye el caso de uso.
func NewSupplyUseCase(
	repo repository.SupplyRepository,
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	renderer ports.ReceiptRenderer,
) *SupplyUseCase {
	return &SupplyUseCase{repo: repo, requestRepo: requestRepo, userRepo: userRepo, renderer: renderer}
}

// List todas las entregas, más recientes primero.
func (uc *SupplyUseCase) List(ctx context.Context) ([]entity.BloodSupply, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortSupplies(list)
	return list, nil
}

// ListByUser entregas de un receptor, más recientes primero.
func (uc *SupplyUseCase) ListByUser(ctx context.Context, userID string) ([]entity.BloodSupply, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortSupplies(list)
	return list, nil
}

// Get entrega por ID. ErrNotFound si no existe.
func (uc *SupplyUseCase) Get(ctx context.Context, id string) (*entity.BloodSupply, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: entrega %s", domain.ErrNotFound, id)
	}
	return s, nil
}

// GetByRequest entrega asociada a una solicitud. ErrNotFound si no existe.
func (uc *SupplyUseCase) GetByRequest(ctx context.Context, requestID string) (*entity.BloodSupply, error) {
	s, err := uc.repo.GetByRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: entrega de la solicitud %s", domain.ErrNotFound, requestID)
	}
	return s, nil
}

// ReceiptPDF genera el comprobante de la entrega.
func (uc *SupplyUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	data := ports.ReceiptData{Supply: *s}
	if data.Request, err = uc.requestRepo.GetByID(ctx, s.RequestID); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		data.ReceiverName = user.Name
		data.ReceiverMail = user.Email
	}
	pdf, err := uc.renderer.SupplyReceipt(data)
	if err != nil {
		return nil, fmt.Errorf("generar comprobante %s: %w", id, err)
	}
	return pdf, nil
}

func sortSupplies(list []entity.BloodSupply) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].SupplyDate.After(list[j].SupplyDate) })
}
