package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/parisxmas/OxiSurvey/internal/auth"
	"github.com/parisxmas/OxiSurvey/internal/handler"
	mw "github.com/parisxmas/OxiSurvey/internal/middleware"
)

func New(
	verifier *auth.Verifier,
	surveyH *handler.SurveyHandler,
	adminH *handler.AdminHandler,
	dashH *handler.DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware. CORS runs before routing so pre-flight requests
	// are answered for every path without auth.
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(mw.PublicCORS, mw.AdminCORS))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// Public routes
	r.Get("/", handler.Health)
	r.Post("/survey/submit", surveyH.Submit)

	// Admin routes. Auth wraps the endpoints only, so a wrong method is
	// answered with 405 before the token is looked at.
	r.Route("/admin", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(verifier))
			r.Get("/surveys", adminH.ListSurveys)
			r.Get("/stats", dashH.Stats)
		})
	})

	return r
}
