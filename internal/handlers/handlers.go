package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/MaxwellWhoSquats/acex/docs"
	authhandlers "github.com/MaxwellWhoSquats/acex/internal/handlers/auth"
	balancehandlers "github.com/MaxwellWhoSquats/acex/internal/handlers/balance"
	roundhandlers "github.com/MaxwellWhoSquats/acex/internal/handlers/rounds"
	"github.com/MaxwellWhoSquats/acex/internal/metrics"
	"github.com/MaxwellWhoSquats/acex/internal/service"
	"github.com/MaxwellWhoSquats/acex/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	AdjustBalance(w http.ResponseWriter, r *http.Request)
	Refill(w http.ResponseWriter, r *http.Request)
	RefillStatus(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
}

type RoundHandler interface {
	PlaceBet(w http.ResponseWriter, r *http.Request)
	ListRounds(w http.ResponseWriter, r *http.Request)
	GetRound(w http.ResponseWriter, r *http.Request)
	Act(w http.ResponseWriter, r *http.Request)
	SettleRound(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BalanceHandler BalanceHandler
	RoundHandler   RoundHandler
	JWTService     auth.JWTServiceInterface
}

func New(s *service.Services, allowBalancePatch bool) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BalanceHandler: balancehandlers.New(s.BalanceService, allowBalancePatch),
		RoundHandler:   roundhandlers.New(s.RoundService),
		JWTService:     s.JWTService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.HTTPMiddleware,
	)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.JWTService))

			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Patch("/", h.BalanceHandler.AdjustBalance)
				r.Get("/history", h.BalanceHandler.GetHistory)
			})
			r.Post("/refill", h.BalanceHandler.Refill)
			r.Get("/refill-status", h.BalanceHandler.RefillStatus)

			r.Route("/rounds", func(r chi.Router) {
				r.Post("/", h.RoundHandler.PlaceBet)
				r.Get("/", h.RoundHandler.ListRounds)
				r.Get("/{id}", h.RoundHandler.GetRound)
				r.Post("/{id}/actions", h.RoundHandler.Act)
				r.Post("/{id}/settle", h.RoundHandler.SettleRound)
			})
		})
	})

	return r
}
