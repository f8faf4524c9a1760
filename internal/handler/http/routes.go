package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)

		r.Post("/users", h.createUser)
		r.Get("/users/me", h.currentUser)

		r.Route("/life-domains", func(r chi.Router) {
			r.Get("/", h.listLifeDomains)
			r.Post("/", h.createLifeDomain)
			r.Get("/{id}", h.getLifeDomain)
			r.Put("/{id}", h.updateLifeDomain)
			r.Delete("/{id}", h.deleteLifeDomain)
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.listEvents)
			r.Post("/", h.createEvent)
			r.Get("/{id}", h.getEvent)
			r.Put("/{id}", h.updateEvent)
			r.Delete("/{id}", h.deleteEvent)
		})

		r.Route("/moods", func(r chi.Router) {
			r.Get("/", h.listMoods)
			r.Post("/", h.createMood)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.listTransactions)
			r.Post("/", h.createTransaction)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", h.listGoals)
			r.Post("/", h.createGoal)
			r.Get("/{id}", h.getGoal)
			r.Put("/{id}", h.updateGoal)
			r.Delete("/{id}", h.deleteGoal)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", h.listContacts)
			r.Post("/", h.createContact)
			r.Get("/{id}", h.getContact)
			r.Put("/{id}", h.updateContact)
			r.Delete("/{id}", h.deleteContact)
		})

		r.Route("/insights", func(r chi.Router) {
			r.Get("/", h.listInsights)
			r.Post("/", h.createInsight)
			r.Patch("/{id}/read", h.markInsightRead)
			r.Patch("/{id}/action", h.markInsightActioned)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/suggestions", h.generateSuggestion)
			r.Get("/life-balance", h.analyzeLifeBalance)
			r.Get("/mood-patterns", h.analyzeMoodPatterns)
			r.Get("/schedule", h.suggestScheduleOptimization)
		})

		r.Get("/dashboard/summary", h.dashboardSummary)
		r.Get("/version/", h.getServerVersion)
	})

	return router
}
