package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"zoomboom/internal/http/middleware"
	"zoomboom/internal/model"
	"zoomboom/internal/service"
)

// Dependencies are the collaborators the HTTP layer calls into.
type Dependencies struct {
	DB       *sql.DB
	Coverage CoverageReader
	Sessions service.SessionService
	Users    service.UserService
	Parcels  service.ParcelService
	Payments service.PaymentService
	Riders   service.RiderService
	Images   service.ImageService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Auth is attached per route so unknown paths still answer 404.
func RegisterRoutes(app *fiber.App, d Dependencies) {
	authed := middleware.Auth(d.Sessions)
	admin := middleware.RequireRole(model.RoleAdmin)

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	app.Post("/jwt", IssueToken(d.Sessions))
	app.Post("/logout", authed, Logout(d.Sessions))

	app.Get("/coverage", SearchCoverage(d.Coverage))
	app.Get("/coverage/regions", ListRegions(d.Coverage))
	app.Get("/coverage/regions/:region/districts", ListDistricts(d.Coverage))
	app.Get("/coverage/districts/:district/areas", ListAreas(d.Coverage))

	app.Put("/users", RegisterUser(d.Users))
	app.Get("/users/:email", authed, GetUser(d.Users))
	app.Get("/users/:email/role", authed, GetUserRole(d.Users))
	app.Patch("/users/:email", authed, UpdateProfile(d.Users))

	app.Post("/parcels/quote", QuoteParcel(d.Parcels))
	app.Post("/parcels", authed, BookParcel(d.Parcels))
	app.Get("/parcels", authed, ListParcels(d.Parcels))
	app.Get("/parcels/:id", authed, GetParcel(d.Parcels))
	app.Patch("/parcels/:id", authed, UpdateParcel(d.Parcels))
	app.Delete("/parcels/:id", authed, CancelParcel(d.Parcels))

	app.Post("/create-payment-intent", authed, CreatePaymentIntent(d.Payments))
	app.Post("/payments", authed, RecordPayment(d.Payments))
	app.Get("/payments", authed, PaymentHistory(d.Payments))

	app.Post("/riders", authed, ApplyRider(d.Riders))
	app.Get("/riders", authed, admin, ListRiders(d.Riders))
	app.Get("/riders/:id", authed, admin, GetRider(d.Riders))
	app.Patch("/riders/:id", authed, admin, ChangeRiderStatus(d.Riders))

	app.Post("/uploads/images", authed, UploadImage(d.Images))
}
