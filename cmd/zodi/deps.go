package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ersonp/zodi-core/internal/application/handlers"
	"github.com/ersonp/zodi-core/internal/domain/entities"
	"github.com/ersonp/zodi-core/internal/domain/ports"
	"github.com/ersonp/zodi-core/internal/domain/services"
	"github.com/ersonp/zodi-core/internal/infrastructure/catalog/yamlcatalog"
	"github.com/ersonp/zodi-core/internal/infrastructure/config"
	"github.com/ersonp/zodi-core/internal/infrastructure/dailycache/sqlite"
	"github.com/ersonp/zodi-core/internal/infrastructure/profilestore/cryptofile"
	"github.com/ersonp/zodi-core/internal/logging"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config        *config.Config
	Log           *slog.Logger
	Selector      *services.DailySelector
	Scorer        *services.CompatibilityScorer
	Profiles      *services.ProfileService
	TodayHandler  *handlers.TodayHandler
	CompatHandler *handlers.CompatibilityHandler
	ProfHandler   *handlers.ProfileHandler
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
//
// Availability first: a missing catalog falls back to built-in content and
// an unopenable cache degrades to in-memory assignments, so every command
// works even before "zodi init".
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(cfg.LogLevel)

	catalog, err := yamlcatalog.NewLoader(cfg.Catalog.Path).Load()
	if err != nil {
		log.Debug("content catalog unavailable, using built-in content", "error", err)
		catalog = nil
	}

	var cache ports.DailyCache
	if err := config.EnsureDataDir(cfg.Cache.Path); err == nil {
		repo, err := sqlite.NewRepository(cfg.Cache)
		if err == nil {
			if err := repo.EnsureSchema(ctx); err == nil {
				cache = repo
			} else {
				repo.Close()
			}
		}
		if cache == nil {
			log.Debug("daily cache unavailable, assignments stay in memory")
		}
	}
	defer func() {
		if cache != nil {
			cache.Close()
		}
	}()

	store, err := cryptofile.NewStore(cfg.Profile)
	if err != nil {
		return fmt.Errorf("creating profile store: %w", err)
	}

	selector := services.NewDailySelector(catalog, cache)
	profiles := services.NewProfileService(ctx, store)
	scorer := services.NewCompatibilityScorer(catalog)

	deps := &Deps{
		Config:        cfg,
		Log:           log,
		Selector:      selector,
		Scorer:        scorer,
		Profiles:      profiles,
		TodayHandler:  handlers.NewTodayHandler(selector),
		CompatHandler: handlers.NewCompatibilityHandler(scorer, profiles),
		ProfHandler:   handlers.NewProfileHandler(profiles),
	}
	return fn(deps)
}

// profileSign resolves the sign stored in the profile, or SignUnknown.
func profileSign(deps *Deps) entities.Sign {
	sign, _ := entities.ParseSign(deps.Profiles.Profile().Sign)
	return sign
}
