package inventory

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	ledger "github.com/jhoicas/bloodbank-api/internal/domain/inventory"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// errUnchanged corta una mutación sin escribir.
var errUnchanged = errors.New("sin cambios")

// LedgerUseCase mantiene un contador de unidades por grupo sanguíneo.
// La cantidad nunca baja de cero: un retiro mayor al disponible deja el grupo en 0.
type LedgerUseCase struct {
	stockRepo repository.StockRepository
	clock     ports.Clock
	ids       ports.IDGenerator
	metrics   ports.Recorder
	log       *logger.Logger
}

// NewLedgerUseCase construye el caso de uso de inventario.
func NewLedgerUseCase(
	stockRepo repository.StockRepository,
	clock ports.Clock,
	ids ports.IDGenerator,
	metrics ports.Recorder,
	log *logger.Logger,
) *LedgerUseCase {
	if metrics == nil {
		metrics = ports.NopRecorder{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &LedgerUseCase{
		stockRepo: stockRepo,
		clock:     clock,
		ids:       ids,
		metrics:   metrics,
		log:       log.Component("ledger"),
	}
}

// GetByGroup devuelve la fila del grupo. ErrNotFound si no existe.
func (uc *LedgerUseCase) GetByGroup(ctx context.Context, group entity.BloodGroup) (*entity.BloodStock, error) {
	if !group.IsValid() {
		return nil, domain.Invalid("bloodGroup", fmt.Sprintf("grupo desconocido %q", group))
	}
	stock, err := uc.stockRepo.GetByGroup(ctx, group)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, group)
	}
	return stock, nil
}

// ApplyDelta suma delta (con signo) a la fila del grupo, recorta en 0 y sella LastUpdated.
// La lectura y la escritura ocurren en una sola mutación del repositorio.
func (uc *LedgerUseCase) ApplyDelta(ctx context.Context, group entity.BloodGroup, delta int) (*entity.BloodStock, error) {
	if !group.IsValid() {
		return nil, domain.Invalid("bloodGroup", fmt.Sprintf("grupo desconocido %q", group))
	}
	var before int
	stock, err := uc.stockRepo.Mutate(ctx, group, func(s *entity.BloodStock) error {
		before = s.Quantity
		s.Quantity = ledger.ApplyDelta(before, delta)
		s.LastUpdated = uc.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%w: stock %s", domain.ErrNotFound, group)
	}

	if before+delta < 0 {
		uc.log.Warn().Str("blood_group", string(group)).Int("delta", delta).Int("available", before).
			Msg("retiro mayor al disponible, stock recortado a 0")
	}
	uc.log.Info().Str("blood_group", string(group)).Int("delta", delta).Int("quantity", stock.Quantity).
		Msg("stock actualizado")
	uc.metrics.StockDelta(string(group), delta)
	uc.metrics.StockLevel(string(group), stock.Quantity)
	return stock, nil
}

// List devuelve las filas en el orden canónico de grupos.
func (uc *LedgerUseCase) List(ctx context.Context) ([]entity.BloodStock, error) {
	rows, err := uc.stockRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].BloodGroup.Index() < rows[j].BloodGroup.Index()
	})
	return rows, nil
}

// SetQuantities lleva cada grupo indicado a la cantidad objetivo aplicando target - actual.
// Valida todo antes de escribir; objetivos negativos o grupos desconocidos no modifican nada.
func (uc *LedgerUseCase) SetQuantities(ctx context.Context, targets map[entity.BloodGroup]int) ([]entity.BloodStock, error) {
	for group, target := range targets {
		if !group.IsValid() {
			return nil, domain.Invalid("bloodGroup", fmt.Sprintf("grupo desconocido %q", group))
		}
		if target < 0 {
			return nil, domain.Invalid("quantity", fmt.Sprintf("%s no puede ser negativo", group))
		}
	}
	for _, group := range entity.BloodGroups {
		target, ok := targets[group]
		if !ok {
			continue
		}
		if err := uc.setQuantity(ctx, group, target); err != nil {
			return nil, err
		}
	}
	return uc.List(ctx)
}

// setQuantity fija la cantidad del grupo en una sola mutación; sin cambio no escribe.
func (uc *LedgerUseCase) setQuantity(ctx context.Context, group entity.BloodGroup, target int) error {
	var delta int
	stock, err := uc.stockRepo.Mutate(ctx, group, func(s *entity.BloodStock) error {
		delta = ledger.DeltaTo(s.Quantity, target)
		if delta == 0 {
			return errUnchanged
		}
		s.Quantity = ledger.ApplyDelta(s.Quantity, delta)
		s.LastUpdated = uc.clock.Now()
		return nil
	})
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	if stock == nil {
		return fmt.Errorf("%w: stock %s", domain.ErrNotFound, group)
	}
	uc.log.Info().Str("blood_group", string(group)).Int("delta", delta).Int("quantity", stock.Quantity).
		Msg("stock fijado")
	uc.metrics.StockDelta(string(group), delta)
	uc.metrics.StockLevel(string(group), stock.Quantity)
	return nil
}

// Initialize crea las 8 filas en 0 si la colección está vacía. Devuelve si creó filas.
func (uc *LedgerUseCase) Initialize(ctx context.Context) (bool, error) {
	rows, err := uc.stockRepo.List(ctx)
	if err != nil {
		return false, err
	}
	if len(rows) > 0 {
		return false, nil
	}
	now := uc.clock.Now()
	for _, group := range entity.BloodGroups {
		row := &entity.BloodStock{ID: uc.ids.NewID(), BloodGroup: group, Quantity: 0, LastUpdated: now}
		if err := uc.stockRepo.Create(ctx, row); err != nil {
			return false, err
		}
	}
	uc.log.Info().Int("groups", len(entity.BloodGroups)).Msg("stock inicializado")
	return true, nil
}
