package service

import (
	"github.com/MaxwellWhoSquats/acex/internal/config"
	"github.com/MaxwellWhoSquats/acex/internal/game"
	"github.com/MaxwellWhoSquats/acex/internal/game/asteroids"
	"github.com/MaxwellWhoSquats/acex/internal/game/blackjack"
	"github.com/MaxwellWhoSquats/acex/internal/game/honeybear"
	"github.com/MaxwellWhoSquats/acex/internal/game/words"
	"github.com/MaxwellWhoSquats/acex/internal/handlers/auth"
	"github.com/MaxwellWhoSquats/acex/internal/handlers/balance"
	"github.com/MaxwellWhoSquats/acex/internal/handlers/rounds"
	"github.com/MaxwellWhoSquats/acex/internal/reconcile"
	"github.com/MaxwellWhoSquats/acex/internal/repo"
	authservice "github.com/MaxwellWhoSquats/acex/internal/service/authservice"
	balanceservice "github.com/MaxwellWhoSquats/acex/internal/service/balanceservice"
	roundservice "github.com/MaxwellWhoSquats/acex/internal/service/roundservice"
	pkgauth "github.com/MaxwellWhoSquats/acex/pkg/auth"
)

type Services struct {
	AuthService    auth.Service
	BalanceService balance.Service
	RoundService   rounds.Service
	StaleRounds    reconcile.Rounds
	JWTService     pkgauth.JWTServiceInterface
}

// Engines registers every playable game.
func Engines(rng game.Rand) *game.Registry {
	return game.NewRegistry(rng,
		blackjack.Factory{},
		honeybear.Factory{},
		words.Factory{},
		asteroids.Factory{},
	)
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	jwtService := pkgauth.NewJWTService(cfg.JWTSecret)

	balanceService := balanceservice.New(repo.BalanceRepo, repo.LedgerRepo, repo.TxManager, balanceservice.Options{
		StartingBalance: cfg.StartingBalance,
		RefillAmount:    cfg.RefillAmount,
		RefillCooldown:  cfg.RefillCooldown,
	})
	roundService := roundservice.New(repo.RoundRepo, balanceService, Engines(game.NewRand()), repo.TxManager, roundservice.Options{
		RoundTTL: cfg.RoundTTL,
	})
	authService := authservice.New(repo.UserRepo, balanceService, repo.TxManager, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)

	return &Services{
		AuthService:    authService,
		BalanceService: balanceService,
		RoundService:   roundService,
		StaleRounds:    roundService,
		JWTService:     jwtService,
	}
}
