package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/jobboard-backend-go/internal/handler/http/middleware"
	"github.com/worklane/jobboard-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	jobHandler JobHandler,
	applicationHandler ApplicationHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	masterHandler MasterHandler,
	userHandler UserHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worklane-jobboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// Public job board
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.List)
			r.Get("/{id}", jobHandler.Get)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Job management (admin)
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/jobs", jobHandler.Create)
				r.Put("/jobs/{id}", jobHandler.Update)
				r.Delete("/jobs/{id}", jobHandler.Delete)
			})

			r.Route("/applications", func(r chi.Router) {
				// Candidate surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.CandidateOnly)
					r.Post("/", applicationHandler.Apply)
					r.Get("/my", applicationHandler.ListMine)
				})

				// Admin surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", applicationHandler.List)
					r.Get("/export", applicationHandler.ExportCSV)
					r.Get("/{id}", applicationHandler.Get)
					r.Patch("/{id}/status", applicationHandler.UpdateStatus)
				})
			})

			r.Route("/attendances", func(r chi.Router) {
				// Employee surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/check-in", attendanceHandler.CheckIn)
					r.Post("/check-out", attendanceHandler.CheckOut)
					r.Get("/my", attendanceHandler.GetMyAttendance)
				})

				// Admin surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Get("/export", attendanceHandler.ExportCSV)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				// Employee surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.EmployeeOnly)
					r.Post("/", leaveHandler.Create)
					r.Get("/my", leaveHandler.ListMine)
				})

				// Admin surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Patch("/{id}/decision", leaveHandler.Decide)
				})
			})

			// Master data (admin)
			r.Route("/master", func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/locations", func(r chi.Router) {
					r.Get("/", masterHandler.ListLocations)
					r.Post("/", masterHandler.CreateLocation)
					r.Get("/{id}", masterHandler.GetLocation)
					r.Put("/{id}", masterHandler.UpdateLocation)
					r.Delete("/{id}", masterHandler.DeleteLocation)
				})

				r.Route("/time-settings", func(r chi.Router) {
					r.Get("/", masterHandler.GetTimeSettings)
					r.Put("/", masterHandler.UpdateTimeSettings)
				})
			})

			// User administration (admin)
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Patch("/{id}/role", userHandler.UpdateRole)
				r.Patch("/{id}/active", userHandler.SetActive)
			})
		})
	})
	return r
}
