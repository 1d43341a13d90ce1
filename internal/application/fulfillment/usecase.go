// Package fulfillment implementa la máquina de estados de solicitudes de sangre:
// Pending -> Approved | Rejected, Approved -> Fulfilled.
//
// La aprobación verifica stock pero no lo reserva; el descuento ocurre al cumplir.
package fulfillment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// Títulos de las notificaciones emitidas en cada transición.
const (
	TitleApproved = "Blood Request Approved"
	TitleRejected = "Blood Request Rejected"
	TitleReady    = "Blood Supply Ready"
)

// RequestUseCase casos de uso de solicitudes.
type RequestUseCase struct {
	repo       repository.RequestRepository
	supplyRepo repository.SupplyRepository
	userRepo   repository.UserRepository
	ledger     ports.StockLedger
	notifier   ports.NotificationSink
	clock      ports.Clock
	ids        ports.IDGenerator
	metrics    ports.Recorder
	log        *logger.Logger
}

// Deps dependencias del caso de uso.
type Deps struct {
	Requests repository.RequestRepository
	Supplies repository.SupplyRepository
	Users    repository.UserRepository
	Ledger   ports.StockLedger
	Notifier ports.NotificationSink
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Metrics  ports.Recorder // opcional
	Log      *logger.Logger // opcional
}

// NewRequestUseCase construye la máquina de estados.
func NewRequestUseCase(d Deps) *RequestUseCase {
	if d.Metrics == nil {
		d.Metrics = ports.NopRecorder{}
	}
	if d.Log == nil {
		d.Log = logger.Nop()
	}
	return &RequestUseCase{
		repo:       d.Requests,
		supplyRepo: d.Supplies,
		userRepo:   d.Users,
		ledger:     d.Ledger,
		notifier:   d.Notifier,
		clock:      d.Clock,
		ids:        d.IDs,
		metrics:    d.Metrics,
		log:        d.Log.Component("requests"),
	}
}

// Submit crea una solicitud Pending para un receptor. No consulta el stock.
func (uc *RequestUseCase) Submit(ctx context.Context, userID string, in dto.SubmitRequestInput) (*entity.BloodRequest, error) {
	group := entity.BloodGroup(in.BloodGroup)
	if !group.IsValid() {
		return nil, domain.Invalid("bloodGroup", fmt.Sprintf("grupo desconocido %q", in.BloodGroup))
	}
	if in.Quantity < 1 {
		return nil, domain.Invalid("quantity", "debe ser al menos 1")
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = entity.UrgencyMedium
	}
	if !entity.IsValidUrgency(urgency) {
		return nil, domain.Invalid("urgency", fmt.Sprintf("valor desconocido %q", in.Urgency))
	}
	hospital := strings.TrimSpace(in.HospitalName)
	if hospital == "" {
		return nil, domain.Invalid("hospitalName", "requerido")
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, domain.Invalid("reason", "requerido")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.IsReceiver {
		return nil, fmt.Errorf("%w: el usuario no es receptor", domain.ErrForbidden)
	}

	req := &entity.BloodRequest{
		ID:           uc.ids.NewID(),
		UserID:       userID,
		BloodGroup:   group,
		Quantity:     in.Quantity,
		RequestDate:  uc.clock.Now(),
		Status:       entity.RequestPending,
		Notes:        strings.TrimSpace(in.Notes),
		Urgency:      urgency,
		HospitalName: hospital,
		Reason:       reason,
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	uc.metrics.RequestTransition(string(entity.RequestPending))
	uc.log.Info().Str("request_id", req.ID).Str("user_id", userID).Str("blood_group", string(group)).
		Int("quantity", req.Quantity).Str("urgency", urgency).Msg("solicitud creada")
	return req, nil
}

// Approve pasa Pending -> Approved si hay stock suficiente. No modifica el stock.
func (uc *RequestUseCase) Approve(ctx context.Context, id string) (*entity.BloodRequest, error) {
	req, err := uc.load(ctx, id, entity.RequestApproved, entity.RequestPending)
	if err != nil {
		return nil, err
	}
	stock, err := uc.ledger.GetByGroup(ctx, req.BloodGroup)
	if err != nil {
		return nil, err
	}
	if stock.Quantity < req.Quantity {
		return nil, &domain.InsufficientStockError{
			BloodGroup: string(req.BloodGroup),
			Available:  stock.Quantity,
			Requested:  req.Quantity,
		}
	}

	req.Status = entity.RequestApproved
	if err := uc.save(ctx, req, entity.RequestPending); err != nil {
		return nil, err
	}
	uc.notify(ctx, req.UserID, TitleApproved,
		fmt.Sprintf("Your request for %d unit(s) of %s blood has been approved.", req.Quantity, req.BloodGroup),
		entity.NotificationSuccess)
	uc.transitioned(req, "solicitud aprobada")
	return req, nil
}

// Reject pasa Pending -> Rejected.
func (uc *RequestUseCase) Reject(ctx context.Context, id string) (*entity.BloodRequest, error) {
	req, err := uc.load(ctx, id, entity.RequestRejected, entity.RequestPending)
	if err != nil {
		return nil, err
	}
	req.Status = entity.RequestRejected
	if err := uc.save(ctx, req, entity.RequestPending); err != nil {
		return nil, err
	}
	uc.notify(ctx, req.UserID, TitleRejected,
		fmt.Sprintf("Your request for %d unit(s) of %s blood has been rejected.", req.Quantity, req.BloodGroup),
		entity.NotificationError)
	uc.transitioned(req, "solicitud rechazada")
	return req, nil
}

// Fulfill pasa Approved -> Fulfilled: crea la entrega, descuenta el stock y fija DeliveryDate.
// La entrega es única por solicitud, así que solo un Fulfill concurrente pasa de ese paso.
// El stock se descuenta al final; si algo falla se deshacen los pasos previos y la solicitud queda Approved.
func (uc *RequestUseCase) Fulfill(ctx context.Context, id string, in dto.FulfillInput) (*entity.BloodRequest, *entity.BloodSupply, error) {
	req, err := uc.load(ctx, id, entity.RequestFulfilled, entity.RequestApproved)
	if err != nil {
		return nil, nil, err
	}
	center := strings.TrimSpace(in.CollectionCenter)
	if center == "" {
		return nil, nil, domain.Invalid("collectionCenter", "requerido")
	}
	supplyDate := uc.clock.Now()
	if in.SupplyDate != nil && !in.SupplyDate.IsZero() {
		supplyDate = in.SupplyDate.UTC()
	}

	supply := &entity.BloodSupply{
		ID:               uc.ids.NewID(),
		RequestID:        req.ID,
		UserID:           req.UserID,
		Quantity:         req.Quantity,
		BloodGroup:       req.BloodGroup,
		CollectionCenter: center,
		SupplyDate:       supplyDate,
		Notes:            strings.TrimSpace(in.Notes),
	}
	if err := uc.supplyRepo.Create(ctx, supply); err != nil {
		return nil, nil, err
	}

	req.Status = entity.RequestFulfilled
	req.DeliveryDate = &supplyDate
	if err := uc.save(ctx, req, entity.RequestApproved); err != nil {
		uc.undoSupply(ctx, supply)
		return nil, nil, err
	}
	if _, err := uc.ledger.ApplyDelta(ctx, req.BloodGroup, -req.Quantity); err != nil {
		uc.undoFulfill(ctx, req)
		uc.undoSupply(ctx, supply)
		return nil, nil, fmt.Errorf("descontar stock de la solicitud %s: %w", req.ID, err)
	}
	uc.notify(ctx, req.UserID, TitleReady,
		fmt.Sprintf("Your requested %d unit(s) of %s blood is ready for collection from %s.", req.Quantity, req.BloodGroup, center),
		entity.NotificationInfo)
	uc.transitioned(req, "solicitud cumplida")
	return req, supply, nil
}

// Get solicitud por ID. ErrNotFound si no existe.
func (uc *RequestUseCase) Get(ctx context.Context, id string) (*entity.BloodRequest, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, id)
	}
	return req, nil
}

// List solicitudes, más recientes primero. status vacío = todas.
func (uc *RequestUseCase) List(ctx context.Context, status entity.RequestStatus) ([]entity.BloodRequest, error) {
	var (
		list []entity.BloodRequest
		err  error
	)
	if status == "" {
		list, err = uc.repo.List(ctx)
	} else {
		if !status.IsValid() {
			return nil, domain.Invalid("status", fmt.Sprintf("estado desconocido %q", status))
		}
		list, err = uc.repo.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}
	sortRequests(list)
	return list, nil
}

// ListByUser solicitudes de un receptor, más recientes primero.
func (uc *RequestUseCase) ListByUser(ctx context.Context, userID string) ([]entity.BloodRequest, error) {
	list, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortRequests(list)
	return list, nil
}

// ListPending solicitudes en Pending.
func (uc *RequestUseCase) ListPending(ctx context.Context) ([]entity.BloodRequest, error) {
	return uc.List(ctx, entity.RequestPending)
}

// load obtiene la solicitud y verifica que esté en el estado de origen requerido.
func (uc *RequestUseCase) load(ctx context.Context, id string, attempted, from entity.RequestStatus) (*entity.BloodRequest, error) {
	req, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status != from || !entity.CanTransition(req.Status, attempted) {
		return nil, &domain.InvalidTransitionError{Current: string(req.Status), Attempted: string(attempted)}
	}
	return req, nil
}

// save escribe la solicitud solo si sigue en from; otra transición concurrente gana si llegó antes.
func (uc *RequestUseCase) save(ctx context.Context, req *entity.BloodRequest, from entity.RequestStatus) error {
	ok, err := uc.repo.UpdateIfStatus(ctx, req, from)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: solicitud %s", domain.ErrNotFound, req.ID)
	}
	return nil
}

func (uc *RequestUseCase) undoFulfill(ctx context.Context, req *entity.BloodRequest) {
	req.Status = entity.RequestApproved
	req.DeliveryDate = nil
	if err := uc.save(context.WithoutCancel(ctx), req, entity.RequestFulfilled); err != nil {
		uc.log.Error().Err(err).Str("request_id", req.ID).Msg("no se pudo devolver la solicitud a Approved")
	}
}

func (uc *RequestUseCase) undoSupply(ctx context.Context, supply *entity.BloodSupply) {
	if _, err := uc.supplyRepo.Delete(context.WithoutCancel(ctx), supply.ID); err != nil {
		uc.log.Error().Err(err).Str("supply_id", supply.ID).Str("request_id", supply.RequestID).
			Msg("no se pudo deshacer la entrega")
	}
}

// notify no revierte la transición si el aviso falla; solo lo registra.
func (uc *RequestUseCase) notify(ctx context.Context, userID, title, message, typ string) {
	if _, err := uc.notifier.Post(ctx, userID, title, message, typ); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Str("title", title).Msg("no se pudo publicar la notificación")
	}
}

func (uc *RequestUseCase) transitioned(req *entity.BloodRequest, msg string) {
	uc.metrics.RequestTransition(string(req.Status))
	uc.log.Info().Str("request_id", req.ID).Str("status", string(req.Status)).
		Str("blood_group", string(req.BloodGroup)).Int("quantity", req.Quantity).Msg(msg)
}

func sortRequests(list []entity.BloodRequest) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].RequestDate.After(list[j].RequestDate) })
}
