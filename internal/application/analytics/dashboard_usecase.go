// Package analytics contiene los resúmenes de los dashboards de admin y de usuario.
// Todo se deriva de las colecciones guardadas; no hay contadores propios.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/bloodbank-api/internal/application/dto"
	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain"
	"github.com/jhoicas/bloodbank-api/internal/domain/donor"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
)

const (
	dashboardMonths          = 6 // meses en el gráfico de donaciones
	dashboardRecentDonations = 5
)

// DashboardUseCase arma los resúmenes leyendo las colecciones en paralelo.
type DashboardUseCase struct {
	users         repository.UserRepository
	donations     repository.DonationRepository
	requests      repository.RequestRepository
	stock         repository.StockRepository
	supplies      repository.SupplyRepository
	notifications repository.NotificationRepository
	clock         ports.Clock
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	users repository.UserRepository,
	donations repository.DonationRepository,
	requests repository.RequestRepository,
	stock repository.StockRepository,
	supplies repository.SupplyRepository,
	notifications repository.NotificationRepository,
	clock ports.Clock,
) *DashboardUseCase {
	return &DashboardUseCase{
		users:         users,
		donations:     donations,
		requests:      requests,
		stock:         stock,
		supplies:      supplies,
		notifications: notifications,
		clock:         clock,
	}
}

type listResult[T any] struct {
	items []T
	err   error
}

func fetch[T any](ctx context.Context, fn func(context.Context) ([]T, error)) <-chan listResult[T] {
	ch := make(chan listResult[T], 1)
	go func() {
		items, err := fn(ctx)
		ch <- listResult[T]{items, err}
	}()
	return ch
}

// Admin resumen global: totales, stock, donaciones de los últimos 6 meses y pendientes.
func (uc *DashboardUseCase) Admin(ctx context.Context) (*dto.AdminDashboardDTO, error) {
	usersCh := fetch(ctx, uc.users.List)
	donationsCh := fetch(ctx, uc.donations.List)
	requestsCh := fetch(ctx, uc.requests.List)
	stockCh := fetch(ctx, uc.stock.List)

	users := <-usersCh
	donations := <-donationsCh
	requests := <-requestsCh
	stock := <-stockCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: usuarios: %w", users.err)
	}
	if donations.err != nil {
		return nil, fmt.Errorf("dashboard: donaciones: %w", donations.err)
	}
	if requests.err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes: %w", requests.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", stock.err)
	}

	out := &dto.AdminDashboardDTO{
		TotalDonations: len(donations.items),
		Pending:        []entity.BloodRequest{},
	}
	for _, u := range users.items {
		if u.IsDonor {
			out.TotalDonors++
		}
		if u.IsReceiver {
			out.TotalReceivers++
		}
	}
	for _, r := range requests.items {
		if r.Status == entity.RequestPending {
			out.Pending = append(out.Pending, r)
		}
	}
	out.PendingRequests = len(out.Pending)
	sort.SliceStable(out.Pending, func(i, j int) bool { return out.Pending[i].RequestDate.After(out.Pending[j].RequestDate) })

	out.Stock = stock.items
	sort.SliceStable(out.Stock, func(i, j int) bool { return out.Stock[i].BloodGroup.Index() < out.Stock[j].BloodGroup.Index() })
	for _, s := range out.Stock {
		out.TotalStock += s.Quantity
	}

	out.DonationsByMonth = donationsByMonth(donations.items, uc.clock.Now(), dashboardMonths)

	recent := append([]entity.Donation(nil), donations.items...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > dashboardRecentDonations {
		recent = recent[:dashboardRecentDonations]
	}
	out.RecentDonations = recent
	return out, nil
}

// User resumen del usuario: sus donaciones, solicitudes, entregas, no leídas y elegibilidad.
func (uc *DashboardUseCase) User(ctx context.Context, userID string) (*dto.UserDashboardDTO, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	donationsCh := fetch(ctx, func(ctx context.Context) ([]entity.Donation, error) { return uc.donations.ListByUser(ctx, userID) })
	requestsCh := fetch(ctx, func(ctx context.Context) ([]entity.BloodRequest, error) { return uc.requests.ListByUser(ctx, userID) })
	suppliesCh := fetch(ctx, func(ctx context.Context) ([]entity.BloodSupply, error) { return uc.supplies.ListByUser(ctx, userID) })
	notesCh := fetch(ctx, func(ctx context.Context) ([]entity.Notification, error) { return uc.notifications.ListByUser(ctx, userID) })

	donations := <-donationsCh
	requests := <-requestsCh
	supplies := <-suppliesCh
	notes := <-notesCh

	if donations.err != nil {
		return nil, fmt.Errorf("dashboard: donaciones: %w", donations.err)
	}
	if requests.err != nil {
		return nil, fmt.Errorf("dashboard: solicitudes: %w", requests.err)
	}
	if supplies.err != nil {
		return nil, fmt.Errorf("dashboard: entregas: %w", supplies.err)
	}
	if notes.err != nil {
		return nil, fmt.Errorf("dashboard: notificaciones: %w", notes.err)
	}

	out := &dto.UserDashboardDTO{
		User:             dto.ToUserResponse(user),
		Donations:        donations.items,
		Requests:         requests.items,
		RequestsByStatus: map[entity.RequestStatus]int{},
		Supplies:         supplies.items,
	}
	sort.SliceStable(out.Donations, func(i, j int) bool { return out.Donations[i].Date.After(out.Donations[j].Date) })
	sort.SliceStable(out.Requests, func(i, j int) bool { return out.Requests[i].RequestDate.After(out.Requests[j].RequestDate) })
	sort.SliceStable(out.Supplies, func(i, j int) bool { return out.Supplies[i].SupplyDate.After(out.Supplies[j].SupplyDate) })

	for _, d := range out.Donations {
		out.TotalDonated += d.Quantity
	}
	for _, r := range out.Requests {
		out.RequestsByStatus[r.Status]++
	}
	for _, n := range notes.items {
		if !n.Read {
			out.UnreadNotifications++
		}
	}
	if user.IsDonor {
		e := donor.Evaluate(out.Donations, uc.clock.Now())
		out.Eligibility = &dto.EligibilityDTO{
			LastDonation:  e.LastDonation,
			NextEligible:  e.NextEligible,
			CanDonate:     e.CanDonate,
			DaysRemaining: e.DaysRemaining,
		}
	}
	return out, nil
}

// donationsByMonth agrupa por mes calendario los últimos n meses (incluido el actual), el más antiguo primero.
func donationsByMonth(donations []entity.Donation, now time.Time, n int) []dto.MonthlyDonationsDTO {
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]dto.MonthlyDonationsDTO, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		m := current.AddDate(0, -(n - 1 - i), 0)
		out[i].Month = monthLabel(m)
		index[out[i].Month] = i
	}
	for _, d := range donations {
		if i, ok := index[monthLabel(d.Date.UTC())]; ok {
			out[i].Donations++
			out[i].Units += d.Quantity
		}
	}
	return out
}

// monthLabel devuelve la etiqueta del mes, ej: "Jan 2026".
func monthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}
