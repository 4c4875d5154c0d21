package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withMetrics, h.withCORS)

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Get("/version/", h.getServerVersion)

		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.initializeUser)
			r.Get("/{id}", h.getUser)
			r.Post("/{id}/info", h.addUserInfo)
			r.Get("/{id}/info", h.getUserInfo)
			r.Put("/{id}/info", h.updateUserInfo)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Post("/", h.addWorkout)
			r.Get("/", h.getAllWorkouts)
			r.Get("/search", h.searchWorkoutByName)
			r.Get("/{id}", h.getWorkoutByID)
			r.Put("/{id}", h.updateWorkout)
			r.Delete("/{id}", h.deleteWorkout)
		})

		r.Route("/food-intakes", func(r chi.Router) {
			r.Post("/", h.addFoodIntake)
			r.Get("/", h.getAllFoodIntake)
			r.Get("/{id}", h.getFoodIntakeByID)
			r.Put("/{id}", h.updateFoodIntake)
			r.Delete("/{id}", h.deleteFoodIntake)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
