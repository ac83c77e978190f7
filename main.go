package main

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"

	"github.com/doinggreatt/appetit-backend/config"
	"github.com/doinggreatt/appetit-backend/logging"
	"github.com/doinggreatt/appetit-backend/orders"
	"github.com/doinggreatt/appetit-backend/store"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Development())
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx := context.Background()

	db, err := store.Open(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("failed to connect to database")
	}
	if err := store.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}
	if err := store.SeedLookups(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed lookup tables")
	}
	if err := orders.NewPricer(orders.InStore(store.New(db)), logger).Ready(ctx); err != nil {
		logger.Fatal().Err(err).Msg("order pricing is not ready")
	}

	verifier, err := newVerifier(ctx, cfg.OIDCIssuer, cfg.OIDCClientID)
	if err != nil {
		logger.Fatal().Err(err).Str("issuer", cfg.OIDCIssuer).Msg("failed to initialise OIDC provider")
	}
	if verifier == nil {
		logger.Warn().Msg("OIDC_ISSUER not set, write endpoints are unauthenticated")
	}

	r := SetupRouter(db, RouterOptions{
		Logger:      logger,
		Verifier:    verifier,
		CORSOrigins: cfg.CORSOrigins,
	})
	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// newVerifier returns nil when no issuer is configured.
func newVerifier(ctx context.Context, issuer, clientID string) (*oidc.IDTokenVerifier, error) {
	if issuer == "" {
		return nil, nil
	}
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, err
	}
	return provider.Verifier(&oidc.Config{ClientID: clientID}), nil
}
