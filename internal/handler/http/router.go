package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jezdibolt/backend-go/internal/domain/auth"
	"github.com/jezdibolt/backend-go/internal/handler/http/middleware"
	"github.com/jezdibolt/backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	importHandler ImportHandler,
	earningsHandler EarningsHandler,
	payConfigHandler PayConfigHandler,
	eventsHandler EventsHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jezdibolt"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Get("/events", eventsHandler.Subscribe)

			r.Route("/import", func(r chi.Router) {
				r.With(middleware.RequirePermission(auth.PermEditImport)).
					Post("/bolt", importHandler.Upload)
				r.With(middleware.RequirePermission(auth.PermViewImport)).
					Get("/list", importHandler.ListBatches)
			})

			r.Route("/earnings", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(auth.PermViewEarnings))
					r.Get("/imports/{id}", earningsHandler.ListByBatch)
					r.Get("/unpaid/all", earningsHandler.ListUnpaid)
					r.Get("/{id}/adjustments", earningsHandler.GetAdjustments)
					r.Get("/{id}/statement", earningsHandler.Statement)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(auth.PermEditEarnings))
					r.Put("/{id}/bonus", earningsHandler.PutBonus)
					r.Put("/{id}/penalty", earningsHandler.PutPenalty)
					r.Put("/{id}/pay", earningsHandler.Pay)
					r.Post("/recalculate/{userId}", earningsHandler.Recalculate)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(auth.PermViewPayConfig))
				r.Get("/payrates", payConfigHandler.ListTiers)
				r.Get("/payrules", payConfigHandler.ListRules)
				r.Get("/payrates/resolve", payConfigHandler.ResolveRate)
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePermission(auth.PermEditPayConfig))
				r.Put("/payrates/{id}", payConfigHandler.UpdateTier)
				r.Put("/payrules/{id}", payConfigHandler.UpdateRule)
			})
		})
	})
	return r
}
