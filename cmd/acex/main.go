package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/MaxwellWhoSquats/acex/internal/app"
)

//	@title			acex API
//	@version		1.0
//	@description	Wager mini-games with a per-user balance ledger.

//	@host		localhost:8080
//	@BasePath	/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		// zap may not be configured yet when config or logger setup fails.
		log.Error().Err(err).Msg("can't start application")
		zap.L().Fatal("can't start application", zap.Error(err))
	}

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Fatal("all systems closed with errors", zap.Error(err))
	}

	zap.L().Info("all systems closed without errors")
}
