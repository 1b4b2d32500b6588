package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aetheris/airline-platform/internal/api/http/handlers"
	"github.com/aetheris/airline-platform/internal/auth"
)

// Each service registers its logical routes twice: bare, for direct
// service-to-service calls, and under its route prefix, for traffic that
// transited the gateway. Health probes sit before the auth middleware so they
// never need a credential.

// PersonsRoutes bundles dependencies for the persons service routes.
type PersonsRoutes struct {
	Health   *handlers.HealthHandler
	Persons  *handlers.PersonsHandler
	Accounts *handlers.AccountsHandler
	Auth     *auth.Middleware
}

// RegisterPersonsRoutes wires the persons service HTTP surface.
func RegisterPersonsRoutes(app *fiber.App, r PersonsRoutes) {
	app.Get("/health/live", r.Health.Live)
	app.Get("/health/ready", r.Health.Ready)
	app.Use(r.Auth.Handle)

	for _, prefix := range []string{"", auth.PersonsRoutePrefix} {
		api := app.Group(prefix + "/api")

		persons := api.Group("/persons")
		persons.Post("/login", r.Persons.Login)
		persons.Get("/me", r.Persons.Me)
		persons.Get("/count", r.Persons.Count)
		persons.Get("/email/:email", r.Persons.GetByEmail)
		persons.Get("/", r.Persons.List)
		persons.Get("/:id", r.Persons.Get)
		persons.Put("/update/:id", r.Persons.Update)
		persons.Patch("/update-password/:id", r.Persons.UpdatePassword)
		persons.Delete("/delete/:id", r.Persons.Delete)

		users := api.Group("/users")
		users.Post("/save", r.Accounts.SaveUser)
		users.Get("/", r.Accounts.ListUsers)

		admins := api.Group("/admins")
		admins.Post("/save", r.Accounts.SaveAdmin)
		admins.Get("/", r.Accounts.ListAdmins)

		employees := api.Group("/employees")
		employees.Post("/save", r.Accounts.SaveEmployee)
		employees.Get("/", r.Accounts.ListEmployees)
	}
}

// FlightsRoutes bundles dependencies for the flights service routes.
type FlightsRoutes struct {
	Health  *handlers.HealthHandler
	Flights *handlers.FlightsHandler
	Auth    *auth.Middleware
}

// RegisterFlightsRoutes wires the flights service HTTP surface.
func RegisterFlightsRoutes(app *fiber.App, r FlightsRoutes) {
	app.Get("/health/live", r.Health.Live)
	app.Get("/health/ready", r.Health.Ready)
	app.Use(r.Auth.Handle)

	for _, prefix := range []string{"", auth.FlightsRoutePrefix} {
		flights := app.Group(prefix + "/api/flights")
		flights.Post("/save", r.Flights.Create)
		flights.Get("/", r.Flights.List)
		flights.Get("/:id", r.Flights.Get)
		flights.Put("/update/:id", r.Flights.Update)
		flights.Delete("/delete/:id", r.Flights.Delete)
	}
}

// AircraftRoutes bundles dependencies for the aircraft service routes.
type AircraftRoutes struct {
	Health   *handlers.HealthHandler
	Aircraft *handlers.AircraftHandler
	Auth     *auth.Middleware
}

// RegisterAircraftRoutes wires the aircraft service HTTP surface.
func RegisterAircraftRoutes(app *fiber.App, r AircraftRoutes) {
	app.Get("/health/live", r.Health.Live)
	app.Get("/health/ready", r.Health.Ready)
	app.Use(r.Auth.Handle)

	for _, prefix := range []string{"", auth.AircraftRoutePrefix} {
		fleet := app.Group(prefix + "/api/aircraft")
		fleet.Post("/save", r.Aircraft.Create)
		fleet.Get("/", r.Aircraft.List)
		fleet.Get("/:id", r.Aircraft.Get)
		fleet.Put("/update/:id", r.Aircraft.Update)
		fleet.Delete("/delete/:id", r.Aircraft.Delete)
	}
}

// ReservationsRoutes bundles dependencies for the reservations service routes.
type ReservationsRoutes struct {
	Health       *handlers.HealthHandler
	Reservations *handlers.ReservationsHandler
	Auth         *auth.Middleware
}

// RegisterReservationsRoutes wires the reservations service HTTP surface.
func RegisterReservationsRoutes(app *fiber.App, r ReservationsRoutes) {
	app.Get("/health/live", r.Health.Live)
	app.Get("/health/ready", r.Health.Ready)
	app.Use(r.Auth.Handle)

	for _, prefix := range []string{"", auth.ReservationsRoutePrefix} {
		reservations := app.Group(prefix + "/api/reservations")
		reservations.Post("/save", r.Reservations.Create)
		reservations.Get("/", r.Reservations.List)
		reservations.Get("/:id", r.Reservations.Get)
		reservations.Patch("/cancel/:id", r.Reservations.Cancel)
		reservations.Delete("/delete/:id", r.Reservations.Delete)
	}
}

// PaymentsRoutes bundles dependencies for the payments service routes.
type PaymentsRoutes struct {
	Health   *handlers.HealthHandler
	Payments *handlers.PaymentsHandler
	Auth     *auth.Middleware
}

// RegisterPaymentsRoutes wires the payments service HTTP surface.
func RegisterPaymentsRoutes(app *fiber.App, r PaymentsRoutes) {
	app.Get("/health/live", r.Health.Live)
	app.Get("/health/ready", r.Health.Ready)
	app.Use(r.Auth.Handle)

	for _, prefix := range []string{"", auth.PaymentsRoutePrefix} {
		payments := app.Group(prefix + "/api/payments")
		payments.Post("/save", r.Payments.Record)
		payments.Get("/reservation/:id", r.Payments.ListByReservation)
		payments.Get("/:id", r.Payments.Get)
		payments.Patch("/refund/:id", r.Payments.Refund)
	}
}

// NotificationsRoutes bundles dependencies for the notifications service routes.
type NotificationsRoutes struct {
	Health        *handlers.HealthHandler
	Notifications *handlers.NotificationsHandler
	Auth          *auth.Middleware
}

// RegisterNotificationsRoutes wires the notifications service HTTP surface.
// The intake endpoint is internal: only service-key callers may use it.
func RegisterNotificationsRoutes(app *fiber.App, r NotificationsRoutes) {
	app.Get("/health/live", r.Health.Live)
	app.Get("/health/ready", r.Health.Ready)
	app.Use(r.Auth.Handle)

	for _, prefix := range []string{"", auth.NotificationsRoutePrefix} {
		notifications := app.Group(prefix + "/api/notifications")
		notifications.Post("/save", auth.RequireAuthority(auth.AuthorityService), r.Notifications.Save)
		notifications.Get("/", r.Notifications.List)
		notifications.Get("/:id", r.Notifications.Get)
		notifications.Patch("/read/:id", r.Notifications.MarkRead)
	}
}
