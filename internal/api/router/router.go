package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "goacesso/docs" // registra a documentação Swagger
	"goacesso/internal/api/day"
	"goacesso/internal/api/door"
	"goacesso/internal/api/key"
	"goacesso/internal/api/schedule"
	"goacesso/internal/api/user"
	"goacesso/internal/domain"
	"goacesso/internal/pkg/cache"
	"goacesso/internal/pkg/logger"
	"goacesso/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	User     *user.Handler
	Key      *key.Handler
	Schedule *schedule.Handler
	Day      *day.Handler
	Door     *door.Handler
}

// Options são os parâmetros de middleware vindos da configuração.
type Options struct {
	TokenService       middleware.TokenService
	Cache              cache.Client
	RateLimitMax       int
	RateLimitPeriod    time.Duration
	CORSAllowedOrigins []string
	TrustProxyHeaders  bool
	Logger             logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	r := chi.NewRouter()

	// --- 1. Middlewares globais ---
	r.Use(chimw.RequestID)
	// RealIP só atrás de proxy confiável: o rate limit usa RemoteAddr como chave.
	if opts.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if opts.Cache != nil {
		r.Use(middleware.RateLimiter(opts.Cache, opts.RateLimitMax, opts.RateLimitPeriod, opts.Logger))
	}

	// --- 2. Rotas públicas ---
	r.Get("/ping", PingHandler)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/signup", h.User.RegisterUserHandler)
		r.Post("/login", h.User.LoginUserHandler)

		// --- 3. Rotas autenticadas ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(opts.TokenService))

			r.Get("/days", h.Day.ListDaysHandler)
			r.Get("/keys", h.Key.ListKeysHandler)
			r.Get("/keys/{id}", h.Key.GetKeyHandler)
			r.Get("/keys/{id}/schedule", h.Schedule.GetScheduleHandler)
			r.Get("/users", h.User.ListUsersHandler)
			r.Get("/doors", h.Door.ListDoorsHandler)

			// --- 4. Escritas: apenas administradores ---
			r.Group(func(r chi.Router) {
				r.Use(middleware.PermissionMiddleware(domain.RoleAdmin))

				r.Put("/keys/{id}", h.Key.AssociateUserHandler)
				r.Post("/keys/{id}/schedule", h.Schedule.AddIntervalHandler)
				r.Post("/keys/{id}/schedule/replicate", h.Schedule.ReplicateIntervalsHandler)
				r.Delete("/schedules/{id}", h.Schedule.RemoveIntervalHandler)
				r.Put("/users/{id}", h.User.UpdateUserHandler)
				r.Post("/doors", h.Door.CreateDoorHandler)
				r.Put("/doors/{id}", h.Door.UpdateDoorHandler)
				r.Delete("/doors/{id}", h.Door.DeleteDoorHandler)
			})
		})
	})

	return r
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
