// Package seed carga los datos de demostración en las colecciones vacías.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

const day = 24 * time.Hour

// Cantidades iniciales por grupo, en el orden de entity.BloodGroups.
var initialStock = [...]int{15, 6, 12, 5, 8, 5, 22, 9}

// Repositories colecciones que el seeder puede poblar.
type Repositories struct {
	Users         repository.UserRepository
	Admins        repository.AdminRepository
	Donations     repository.DonationRepository
	Requests      repository.RequestRepository
	Stock         repository.StockRepository
	Supplies      repository.SupplyRepository
	Notifications repository.NotificationRepository
}

// Report colecciones que se poblaron en esta ejecución.
type Report struct {
	Seeded []string
}

// Seeder escribe cada colección solo si está vacía; nunca pisa datos existentes.
type Seeder struct {
	repos Repositories
	clock ports.Clock
	ids   ports.IDGenerator
	log   *logger.Logger
}

// NewSeeder construye el seeder.
func NewSeeder(repos Repositories, clock ports.Clock, ids ports.IDGenerator, log *logger.Logger) *Seeder {
	if log == nil {
		log = logger.Nop()
	}
	return &Seeder{repos: repos, clock: clock, ids: ids, log: log.Component("seed")}
}

// dataset registros demo generados relativos a now.
type dataset struct {
	admin         entity.Admin
	users         []entity.User
	donations     []entity.Donation
	requests      []entity.BloodRequest
	stock         []entity.BloodStock
	supplies      []entity.BloodSupply
	notifications []entity.Notification
}

// Run genera el dataset y lo escribe colección por colección.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	data := s.build(s.clock.Now())
	report := &Report{}

	steps := []struct {
		name  string
		empty func(context.Context) (bool, error)
		write func(context.Context) error
	}{
		{"admins", isEmpty(s.repos.Admins.List), func(ctx context.Context) error {
			return s.repos.Admins.Create(ctx, &data.admin)
		}},
		{"users", isEmpty(s.repos.Users.List), func(ctx context.Context) error {
			return each(ctx, data.users, s.repos.Users.Create)
		}},
		{"donations", isEmpty(s.repos.Donations.List), func(ctx context.Context) error {
			return each(ctx, data.donations, s.repos.Donations.Create)
		}},
		{"requests", isEmpty(s.repos.Requests.List), func(ctx context.Context) error {
			return each(ctx, data.requests, s.repos.Requests.Create)
		}},
		{"stock", isEmpty(s.repos.Stock.List), func(ctx context.Context) error {
			return each(ctx, data.stock, s.repos.Stock.Create)
		}},
		{"supplies", isEmpty(s.repos.Supplies.List), func(ctx context.Context) error {
			return each(ctx, data.supplies, s.repos.Supplies.Create)
		}},
		{"notifications", isEmpty(s.repos.Notifications.List), func(ctx context.Context) error {
			return each(ctx, data.notifications, s.repos.Notifications.Create)
		}},
	}

	for _, step := range steps {
		empty, err := step.empty(ctx)
		if err != nil {
			return nil, fmt.Errorf("seed %s: %w", step.name, err)
		}
		if !empty {
			s.log.Debug().Str("collection", step.name).Msg("colección con datos, se omite")
			continue
		}
		if err := step.write(ctx); err != nil {
			return nil, fmt.Errorf("seed %s: %w", step.name, err)
		}
		report.Seeded = append(report.Seeded, step.name)
	}
	s.log.Info().Strs("seeded", report.Seeded).Msg("datos demo cargados")
	return report, nil
}

func isEmpty[T any](list func(context.Context) ([]T, error)) func(context.Context) (bool, error) {
	return func(ctx context.Context) (bool, error) {
		items, err := list(ctx)
		return len(items) == 0, err
	}
}

func each[T any](ctx context.Context, items []T, create func(context.Context, *T) error) error {
	for i := range items {
		if err := create(ctx, &items[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) build(now time.Time) dataset {
	var d dataset

	d.admin = entity.Admin{
		ID:        s.ids.NewID(),
		Username:  "admin",
		Password:  "admin123",
		Email:     "admin@bloodbank.com",
		CreatedAt: now,
	}

	john := entity.User{
		ID: s.ids.NewID(), Name: "John Doe", Age: 28, Gender: entity.GenderMale,
		BloodGroup: entity.BloodGroupOPos, Phone: "555-123-4567", Email: "john@example.com",
		Address: "123 Main St, City", Password: "password", IsDonor: true, IsReceiver: true,
		CreatedAt: now.Add(-30 * day), UpdatedAt: now,
	}
	jane := entity.User{
		ID: s.ids.NewID(), Name: "Jane Smith", Age: 35, Gender: entity.GenderFemale,
		BloodGroup: entity.BloodGroupAPos, Phone: "555-987-6543", Email: "jane@example.com",
		Address: "456 Elm St, Town", Password: "password", IsDonor: true, IsReceiver: false,
		CreatedAt: now.Add(-60 * day), UpdatedAt: now,
	}
	d.users = []entity.User{john, jane}

	// 8 donaciones de John y 5 de Jane repartidas en los últimos 3 meses.
	for i := 0; i < 8; i++ {
		month := now.AddDate(0, -(i / 3), 0)
		don := entity.Donation{
			ID: s.ids.NewID(), UserID: john.ID, Date: month.Add(-time.Duration(i*4) * day),
			BloodGroup: john.BloodGroup, Quantity: 1, CreatedAt: month,
			CollectionCenter: "City Hospital",
		}
		if i%2 == 0 {
			don.Notes = "Regular donation"
			don.CollectionCenter = "Central Blood Bank"
		}
		d.donations = append(d.donations, don)
	}
	for i := 0; i < 5; i++ {
		month := now.AddDate(0, -(i / 2), 0)
		don := entity.Donation{
			ID: s.ids.NewID(), UserID: jane.ID, Date: month.Add(-time.Duration(i*5+1) * day),
			BloodGroup: jane.BloodGroup, Quantity: 1, CreatedAt: month,
			CollectionCenter: "Medical Center",
		}
		if i%2 == 0 {
			don.Notes = "First time donor"
			don.CollectionCenter = "Central Blood Bank"
		}
		d.donations = append(d.donations, don)
	}

	delivered := now.Add(-14 * day)
	scheduled := now
	d.requests = []entity.BloodRequest{
		{
			ID: s.ids.NewID(), UserID: john.ID, BloodGroup: entity.BloodGroupAPos, Quantity: 2,
			RequestDate: now.Add(-15 * day), Status: entity.RequestFulfilled, Urgency: entity.UrgencyMedium,
			DeliveryDate: &delivered, HospitalName: "General Hospital", Reason: "Surgery",
		},
		{
			ID: s.ids.NewID(), UserID: john.ID, BloodGroup: entity.BloodGroupONeg, Quantity: 1,
			RequestDate: now.Add(-2 * day), Status: entity.RequestPending, Urgency: entity.UrgencyHigh,
			HospitalName: "St. Mary Hospital", Reason: "Emergency",
		},
		{
			ID: s.ids.NewID(), UserID: jane.ID, BloodGroup: entity.BloodGroupBPos, Quantity: 3,
			RequestDate: now.Add(-7 * day), Status: entity.RequestApproved, Urgency: entity.UrgencyMedium,
			DeliveryDate: &scheduled, HospitalName: "City Medical Center", Reason: "Transfusion",
		},
	}

	for i, g := range entity.BloodGroups {
		d.stock = append(d.stock, entity.BloodStock{
			ID: s.ids.NewID(), BloodGroup: g, Quantity: initialStock[i], LastUpdated: now,
		})
	}

	fulfilled := d.requests[0]
	d.supplies = []entity.BloodSupply{{
		ID: s.ids.NewID(), RequestID: fulfilled.ID, UserID: fulfilled.UserID, Quantity: fulfilled.Quantity,
		BloodGroup: fulfilled.BloodGroup, CollectionCenter: "Central Blood Bank", SupplyDate: delivered,
		Notes: "Supplied for surgery",
	}}

	d.notifications = []entity.Notification{
		{
			ID: s.ids.NewID(), UserID: john.ID, Title: "Blood Request Approved",
			Message: "Your blood request has been approved and will be fulfilled soon.",
			Type:    entity.NotificationSuccess, CreatedAt: now.Add(-1 * day),
		},
		{
			ID: s.ids.NewID(), UserID: john.ID, Title: "Donation Reminder",
			Message: "You are now eligible to donate blood again. Your last donation was 3 months ago.",
			Type:    entity.NotificationInfo, Read: true, CreatedAt: now.Add(-3 * day),
		},
		{
			ID: s.ids.NewID(), UserID: jane.ID, Title: "Thank You for Donating",
			Message: "Thank you for your recent blood donation. You have helped save lives!",
			Type:    entity.NotificationSuccess, CreatedAt: now.Add(-2 * day),
		},
	}
	return d
}
