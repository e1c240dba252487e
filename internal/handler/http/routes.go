package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Init wires the full route table. allowedOrigins is the fixed CORS
// allow-list from configuration.
func (h *Handler) Init(allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/user/profile", h.upsertProfile)
		r.Get("/user/{user_id}", h.getUser)
		r.Put("/user/{user_id}", h.updateUser)

		r.Post("/suggest-packages/prompt", h.suggestFromPrompt)
		r.Post("/suggest-packages/filters", h.suggestFromFilters)

		r.Post("/itinerary/save", h.saveItinerary)
		r.Get("/itinerary/{user_id}", h.listSavedItineraries)
	})

	return router
}
