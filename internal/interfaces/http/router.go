package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/akwaabafreight/tracking-api/internal/application/auth"
	"github.com/akwaabafreight/tracking-api/internal/application/importer"
	"github.com/akwaabafreight/tracking-api/internal/application/tracking"
	"github.com/akwaabafreight/tracking-api/internal/infrastructure/upload"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	TrackingUC *tracking.UseCase
	ImportUC   *importer.UseCase
	Uploads    *upload.Store
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Tracking (Bearer token required)
	trackingGroup := api.Group("/tracking", AuthMiddleware(deps.JWTSecret))
	trackingHandler := NewTrackingHandler(deps.TrackingUC)
	trackingGroup.Get("/", trackingHandler.List)
	trackingGroup.Get("/search/:trackingNumber", trackingHandler.Search)
	trackingGroup.Post("/", trackingHandler.Upsert)
	trackingGroup.Delete("/:id", trackingHandler.Delete)

	// Bulk import (Bearer token + employee role)
	uploadGroup := api.Group("/upload", AuthMiddleware(deps.JWTSecret), RequireEmployee())
	uploadHandler := NewUploadHandler(deps.ImportUC, deps.Uploads)
	uploadGroup.Post("/excel", uploadHandler.ImportExcel)
}
