// Package bootstrap arma repositorios y casos de uso sobre un KeyValueStore.
// Lo comparten cmd/api, cmd/seed y los tests de HTTP.
package bootstrap

import (
	"github.com/jhoicas/bloodbank-api/internal/application/analytics"
	"github.com/jhoicas/bloodbank-api/internal/application/auth"
	"github.com/jhoicas/bloodbank-api/internal/application/fulfillment"
	"github.com/jhoicas/bloodbank-api/internal/application/inventory"
	"github.com/jhoicas/bloodbank-api/internal/application/ports"
	"github.com/jhoicas/bloodbank-api/internal/application/seed"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain/repository"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/idgen"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/pdf"
	"github.com/jhoicas/bloodbank-api/internal/infrastructure/recordstore"
	httpRouter "github.com/jhoicas/bloodbank-api/internal/interfaces/http"
	"github.com/jhoicas/bloodbank-api/pkg/logger"
)

// DefaultBankName nombre impreso en los comprobantes.
const DefaultBankName = "Blood Bank"

// Options colaboradores inyectables. Los nil toman su implementación por defecto.
type Options struct {
	Clock    ports.Clock
	IDs      ports.IDGenerator
	Metrics  ports.Recorder
	Renderer ports.ReceiptRenderer
	JWT      auth.JWTConfig
	Log      *logger.Logger
}

// Repos repositorios sobre el mismo store.
type Repos struct {
	Users         *recordstore.UserRepo
	Admins        *recordstore.AdminRepo
	Donations     *recordstore.DonationRepo
	Requests      *recordstore.RequestRepo
	Stock         *recordstore.StockRepo
	Supplies      *recordstore.SupplyRepo
	Notifications *recordstore.NotificationRepo
	Sessions      *recordstore.SessionRepo
}

// Container casos de uso listos para montar en el router.
type Container struct {
	Repos         Repos
	Auth          *auth.AuthUseCase
	Users         *usecase.UserUseCase
	Donations     *usecase.DonationUseCase
	Requests      *fulfillment.RequestUseCase
	Ledger        *inventory.LedgerUseCase
	Supplies      *usecase.SupplyUseCase
	Notifications *usecase.NotificationUseCase
	Dashboard     *analytics.DashboardUseCase
	Seeder        *seed.Seeder
	jwtSecret     string
}

// Build construye el grafo completo.
func Build(store repository.KeyValueStore, opts Options) *Container {
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.IDs == nil {
		opts.IDs = idgen.UUID{}
	}
	if opts.Renderer == nil {
		opts.Renderer = pdf.NewReceiptGenerator(DefaultBankName)
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}

	r := Repos{
		Users:         recordstore.NewUserRepository(store),
		Admins:        recordstore.NewAdminRepository(store),
		Donations:     recordstore.NewDonationRepository(store),
		Requests:      recordstore.NewRequestRepository(store),
		Stock:         recordstore.NewStockRepository(store),
		Supplies:      recordstore.NewSupplyRepository(store),
		Notifications: recordstore.NewNotificationRepository(store),
		Sessions:      recordstore.NewSessionRepository(store),
	}

	c := &Container{Repos: r, jwtSecret: opts.JWT.Secret}
	c.Ledger = inventory.NewLedgerUseCase(r.Stock, opts.Clock, opts.IDs, opts.Metrics, opts.Log)
	c.Notifications = usecase.NewNotificationUseCase(r.Notifications, opts.Clock, opts.IDs)
	c.Users = usecase.NewUserUseCase(r.Users, opts.Clock, opts.IDs)
	c.Donations = usecase.NewDonationUseCase(r.Donations, r.Users, c.Ledger, opts.Clock, opts.IDs, opts.Log)
	c.Supplies = usecase.NewSupplyUseCase(r.Supplies, r.Requests, r.Users, opts.Renderer)
	c.Requests = fulfillment.NewRequestUseCase(fulfillment.Deps{
		Requests: r.Requests,
		Supplies: r.Supplies,
		Users:    r.Users,
		Ledger:   c.Ledger,
		Notifier: c.Notifications,
		Clock:    opts.Clock,
		IDs:      opts.IDs,
		Metrics:  opts.Metrics,
		Log:      opts.Log,
	})
	c.Auth = auth.NewAuthUseCase(r.Users, r.Admins, r.Sessions, c.Users, opts.Clock, opts.JWT, opts.Log)
	c.Dashboard = analytics.NewDashboardUseCase(r.Users, r.Donations, r.Requests, r.Stock, r.Supplies, r.Notifications, opts.Clock)
	c.Seeder = seed.NewSeeder(seed.Repositories{
		Users:         r.Users,
		Admins:        r.Admins,
		Donations:     r.Donations,
		Requests:      r.Requests,
		Stock:         r.Stock,
		Supplies:      r.Supplies,
		Notifications: r.Notifications,
	}, opts.Clock, opts.IDs, opts.Log)
	return c
}

// RouterDeps dependencias del router HTTP.
func (c *Container) RouterDeps() httpRouter.RouterDeps {
	return httpRouter.RouterDeps{
		AuthUC:         c.Auth,
		UserUC:         c.Users,
		DonationUC:     c.Donations,
		RequestUC:      c.Requests,
		LedgerUC:       c.Ledger,
		SupplyUC:       c.Supplies,
		NotificationUC: c.Notifications,
		DashboardUC:    c.Dashboard,
		JWTSecret:      c.jwtSecret,
	}
}
