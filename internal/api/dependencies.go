package api

import (
	"os"
	"time"

	"cardvault/internal/common"
	"cardvault/internal/db"
	"cardvault/internal/db/repositories"
	"cardvault/internal/importer"
	"cardvault/internal/metrics"
	"cardvault/internal/services"
)

type Repositories struct {
	Registry   *repositories.RegistryRepository
	Players    *repositories.PlayerRepository
	Checklists *repositories.ChecklistRepository
	Inventory  *repositories.InventoryRepository
	Sales      *repositories.SalesRepository
	Grading    *repositories.GradingRepository
	Users      *repositories.UserRepository
	Keys       *repositories.KeysRepo
}

type Services struct {
	Cache       common.CacheInterface
	Auth        *services.AuthService
	Import      *services.ImportService
	SalesImport *services.SalesImportService
	Stats       *services.CollectionStatsService
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
}

// InitDependencies wires repositories and services against the global DB
// handles. The cache backend comes from CACHE_BACKEND (redis or in-memory).
func InitDependencies(metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		Registry:   repositories.NewRegistryRepository(db.PgDB),
		Players:    repositories.NewPlayerRepository(db.PgDB),
		Checklists: repositories.NewChecklistRepository(db.PgDB),
		Inventory:  repositories.NewInventoryRepository(db.PgDB),
		Sales:      repositories.NewSalesRepository(db.PgDB),
		Grading:    repositories.NewGradingRepository(db.PgDB),
		Users:      repositories.NewUserRepository(db.PgDB),
		Keys:       repositories.NewApiKeysRepo(db.DB),
	}

	var cache common.CacheInterface
	if os.Getenv("CACHE_BACKEND") == "redis" {
		cache = common.NewRedisCacheService(common.NewRedisClient())
	} else {
		cache = common.NewCacheService(time.Minute, 10*time.Minute)
	}

	svcs := &Services{
		Cache:       cache,
		Auth:        services.NewAuthService(repos.Users),
		Import:      services.NewImportService(db.PgDB, importer.DefaultConfig(), metricsReg),
		SalesImport: services.NewSalesImportService(db.PgDB, metricsReg),
		Stats:       services.NewCollectionStatsService(db.PgDB, cache),
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
	}, nil
}
