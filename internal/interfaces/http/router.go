package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bloodbank-api/internal/application/analytics"
	"github.com/jhoicas/bloodbank-api/internal/application/auth"
	"github.com/jhoicas/bloodbank-api/internal/application/fulfillment"
	"github.com/jhoicas/bloodbank-api/internal/application/inventory"
	"github.com/jhoicas/bloodbank-api/internal/application/usecase"
	"github.com/jhoicas/bloodbank-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	DonationUC     *usecase.DonationUseCase
	RequestUC      *fulfillment.RequestUseCase
	LedgerUC       *inventory.LedgerUseCase
	SupplyUC       *usecase.SupplyUseCase
	NotificationUC *usecase.NotificationUseCase
	DashboardUC    *analytics.DashboardUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo logout y session)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/admin/login", authHandler.AdminLogin)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)
	authGroup.Get("/session", AuthMiddleware(deps.JWTSecret), authHandler.Session)

	// Usuario autenticado
	me := api.Group("/me", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleUser))
	meHandler := NewMeHandler(deps.DashboardUC, deps.RequestUC, deps.DonationUC, deps.SupplyUC, deps.NotificationUC)
	me.Get("/dashboard", meHandler.Dashboard)
	me.Get("/requests", meHandler.Requests)
	me.Post("/requests", meHandler.SubmitRequest)
	me.Get("/donations", meHandler.Donations)
	me.Get("/supplies", meHandler.Supplies)
	me.Get("/notifications", meHandler.Notifications)
	me.Patch("/notifications/read-all", meHandler.MarkAllRead)
	me.Patch("/notifications/:id/read", meHandler.MarkRead)

	// Administración
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	admin.Get("/dashboard", NewDashboardHandler(deps.DashboardUC).Admin)

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	donations := admin.Group("/donations")
	donationHandler := NewDonationHandler(deps.DonationUC)
	donations.Get("/", donationHandler.List)
	donations.Post("/", donationHandler.Record)
	donations.Delete("/:id", donationHandler.Delete)

	requests := admin.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC)
	requests.Get("/", requestHandler.List)
	requests.Post("/:id/approve", requestHandler.Approve)
	requests.Post("/:id/reject", requestHandler.Reject)
	requests.Post("/:id/fulfill", requestHandler.Fulfill)

	stock := admin.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stock.Get("/", stockHandler.List)
	stock.Put("/", stockHandler.Set)
	stock.Post("/:group/delta", stockHandler.Delta)

	supplies := admin.Group("/supplies")
	supplyHandler := NewSupplyHandler(deps.SupplyUC)
	supplies.Get("/", supplyHandler.List)
	supplies.Get("/:id/receipt", supplyHandler.Receipt)

	notifications := admin.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/", notificationHandler.Post)
}
