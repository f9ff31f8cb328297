package main

import (
	"context"

	"gin-shoplist/infra"
	"gin-shoplist/repositories"
	"gin-shoplist/security"
	"gin-shoplist/services"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logger := infra.NewLogger(cfg)

	db, err := infra.SetupDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := infra.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to migrate database")
	}
	logger.Info().Msg("Migration completed")

	if !cfg.DBPrefill {
		return
	}
	store := repositories.NewStore(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	err = services.Prefill(context.Background(), store,
		services.NewUserService(store, hasher),
		services.NewShopListService(store),
		services.NewShopItemService(store),
		services.PrefillAdmin{
			Email:    cfg.PrefillAdminEmail,
			Name:     cfg.PrefillAdminName,
			Password: cfg.PrefillAdminPassword,
		})
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to prefill database")
	}
}
