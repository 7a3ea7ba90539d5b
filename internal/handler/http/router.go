package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/leavedesk/leavedesk-go/internal/handler/http/middleware"
)

func NewRouter(session middleware.Session, frontendURL string, leaveHandler LeaveHandler, dashboardHandler DashboardHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leavedesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		r.Post("/session", leaveHandler.Login)

		// The leave type set is static; no login needed to render the form.
		r.Get("/leave-types", leaveHandler.ListTypes)

		// Requires a successful login this session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionRequired(session))

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Post("/", leaveHandler.Create)
				r.Post("/refresh", leaveHandler.Refresh)

				r.Route("/{id}", func(r chi.Router) {
					r.Delete("/", leaveHandler.Delete)
					r.Patch("/status", leaveHandler.UpdateStatus)
					r.Patch("/type", leaveHandler.UpdateType)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", dashboardHandler.GetOverview)
				r.Get("/stats", dashboardHandler.GetStats)
			})
		})
	})

	return r
}
