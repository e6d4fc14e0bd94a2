package routes

import (
	"net/http"

	"github.com/Aruzhan01/academy-system/handlers"
	"github.com/Aruzhan01/academy-system/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Coach       *handlers.CoachHandler
	Partner     *handlers.PartnerHandler
	Tournament  *handlers.TournamentHandler
	Achievement *handlers.AchievementHandler
	Testimonial *handlers.TestimonialHandler
	Match       *handlers.MatchHandler
	About       *handlers.AboutHandler
	Dashboard   *handlers.DashboardHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(router *chi.Mux, h Handlers, jwtSecret string, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate([]byte(jwtSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/partners", func(r chi.Router) {
		r.Get("/", h.Partner.GetAllPartners)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Partner.CreatePartner)
			r.Put("/{partnerID}", h.Partner.UpdatePartner)
			r.Delete("/{partnerID}", h.Partner.DeletePartner)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournament.GetAllTournaments)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Tournament.CreateTournament)
			r.Put("/{tournamentID}", h.Tournament.UpdateTournament)
			r.Delete("/{tournamentID}", h.Tournament.DeleteTournament)
		})
	})

	router.Route("/achievements", func(r chi.Router) {
		r.Get("/", h.Achievement.GetAllAchievements)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Achievement.CreateAchievement)
			r.Put("/{achievementID}", h.Achievement.UpdateAchievement)
			r.Delete("/{achievementID}", h.Achievement.DeleteAchievement)
		})
	})

	router.Route("/coaches", func(r chi.Router) {
		r.Get("/", h.Coach.GetAllCoaches)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Coach.CreateCoach)
			r.Put("/{coachID}", h.Coach.UpdateCoach)
			r.Delete("/{coachID}", h.Coach.DeleteCoach)
		})
	})

	router.Route("/testimonials", func(r chi.Router) {
		r.Get("/", h.Testimonial.GetAllTestimonials)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Testimonial.CreateTestimonial)
			r.Put("/{testimonialID}", h.Testimonial.UpdateTestimonial)
			r.Delete("/{testimonialID}", h.Testimonial.DeleteTestimonial)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/", h.Match.GetAllMatches)
		r.Get("/upcoming", h.Match.GetUpcomingMatches)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Post("/", h.Match.CreateMatch)
			r.Put("/{matchID}", h.Match.UpdateMatch)
			r.Delete("/{matchID}", h.Match.DeleteMatch)
		})
	})

	router.Route("/about", func(r chi.Router) {
		r.Get("/", h.About.GetAbout)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(middleware.RequireAdmin)

			r.Put("/", h.About.UpdateAbout)
		})
	})

	router.Route("/admin", func(r chi.Router) {
		r.Use(authenticate)
		r.Use(middleware.RequireAdmin)

		r.Get("/dashboard", h.Dashboard.Stats)
	})

	router.Get("/ws/matches", h.WebSocket.ServeMatches)
}
