package routes

import (
	"cardvault/internal/api"
	"cardvault/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
// This keeps API route registration separate from the main router setup
func RegisterAPIRoutes(r chi.Router, handlers *api.Handlers, deps *api.Dependencies) {

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public
		v1.Post("/auth/login", handlers.LoginHandler())
		v1.Post("/auth/register", handlers.RegisterHandler())

		// Authenticated routes (JWT bearer token or API key)
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Services.Auth, deps.Repo.Keys))

			// Imports are the heavy path, keep them rate limited
			authed.Group(func(imports chi.Router) {
				imports.Use(middleware.RateLimitMiddleware)
				imports.Post("/imports/checklist", handlers.ImportChecklistHandler())
				imports.Post("/imports/checklist/preview", handlers.PreviewChecklistHandler())
				imports.Post("/imports/sales", handlers.ImportSalesHandler())
			})

			authed.Get("/product-lines", handlers.ListProductLinesHandler())
			authed.Post("/product-lines", handlers.CreateProductLineHandler())
			authed.Get("/product-lines/{id}/checklists", handlers.ListChecklistsHandler())
			authed.Get("/checklists/{id}", handlers.GetChecklistHandler())

			authed.Get("/players", handlers.SearchPlayersHandler())
			authed.Get("/players/{id}", handlers.GetPlayerHandler())

			authed.Get("/inventory", handlers.ListInventoryHandler())
			authed.Post("/inventory", handlers.CreateInventoryItemHandler())
			authed.Get("/inventory/{id}", handlers.GetInventoryItemHandler())
			authed.Delete("/inventory/{id}", handlers.DeleteInventoryItemHandler())

			authed.Get("/sales", handlers.ListSalesHandler())

			authed.Get("/grading", handlers.ListGradingSubmissionsHandler())
			authed.Post("/grading", handlers.CreateGradingSubmissionHandler())
			authed.Put("/grading/{id}", handlers.UpdateGradingSubmissionHandler())

			authed.Get("/consignments", handlers.ListConsignmentsHandler())
			authed.Post("/consignments", handlers.CreateConsignmentHandler())
			authed.Put("/consignments/{id}", handlers.UpdateConsignmentHandler())

			authed.Get("/collection/stats", handlers.CollectionStatsHandler())
		})
	})
}
