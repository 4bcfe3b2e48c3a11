package services

import (
	"fmt"
	"path/filepath"

	"tunescout/internal/api/audiodb"
	"tunescout/internal/config"
	"tunescout/internal/core/catalog"
	"tunescout/internal/core/popular"
	"tunescout/internal/core/search"
	"tunescout/internal/interfaces"
	"tunescout/internal/library"
	"tunescout/internal/shared"
	"tunescout/internal/storage"
)

// ServiceContainer holds all application services
type ServiceContainer struct {
	Config           *config.Config
	APIClient        interfaces.APIClient
	Catalog          interfaces.TrackSource
	Sampler          *popular.Sampler
	SearchService    interfaces.SearchService
	Store            interfaces.Store
	Playlists        interfaces.PlaylistService
	Sessions         interfaces.SessionService
	Logger           interfaces.LoggerService
	WarningCollector *shared.WarningCollector
	Results          *ResultState
}

// Options override the collaborators the container would otherwise build itself
type Options struct {
	Logger    interfaces.LoggerService
	APIClient interfaces.APIClient
	Store     interfaces.Store
	Seed      uint64 // 0 seeds the sampler from crypto/rand

	// DiscardWarnings turns the collector off for long-running processes
	// that never print a summary.
	DiscardWarnings bool
}

// NewServiceContainer creates a new service container with all services initialized
func NewServiceContainer(cfg *config.Config, opts Options) (*ServiceContainer, error) {
	// Create logger first as other services may need it
	logger := opts.Logger
	if logger == nil {
		logger = NewConsoleLogger()
	}
	logger.SetDebugMode(cfg.Debug)

	warningCollector := shared.NewWarningCollector(!opts.DiscardWarnings)

	apiClient := opts.APIClient
	if apiClient == nil {
		apiClient = audiodb.NewClientWithConfig(audiodb.Config{
			BaseURL:    cfg.BaseURL,
			UserAgent:  cfg.UserAgent,
			Timeout:    cfg.Timeout(),
			RateLimit:  cfg.RateLimit(),
			BurstLimit: cfg.BurstLimit,
			Debug:      cfg.Debug,
		})
	}

	store := opts.Store
	if store == nil {
		var err error
		if store, err = OpenStore(cfg.DatabasePath); err != nil {
			return nil, err
		}
	}

	cat := catalog.New(apiClient, logger, warningCollector, cfg.Parallelism)
	sampler := popular.NewSampler(cat, logger, warningCollector, cfg.Parallelism, opts.Seed)

	return &ServiceContainer{
		Config:           cfg,
		APIClient:        apiClient,
		Catalog:          cat,
		Sampler:          sampler,
		SearchService:    search.NewService(cat, sampler, logger),
		Store:            store,
		Playlists:        library.NewPlaylistService(store),
		Sessions:         library.NewSessionService(store, cfg.Credentials),
		Logger:           logger,
		WarningCollector: warningCollector,
		Results:          NewResultState(),
	}, nil
}

// OpenStore opens the sqlite store at path, or an in-memory store when path is empty
func OpenStore(path string) (interfaces.Store, error) {
	if path == "" {
		return storage.NewMemoryStore(), nil
	}
	if path != ":memory:" {
		if err := shared.CreateDirIfNotExists(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	store, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Close releases the store
func (c *ServiceContainer) Close() error {
	return c.Store.Close()
}

// ConfigService implementation
type ConfigService struct{}

func NewConfigService() *ConfigService {
	return &ConfigService{}
}

func (cs *ConfigService) LoadConfig(configFile string) (*config.Config, error) {
	return config.Load(configFile)
}

func (cs *ConfigService) SaveConfig(configFile string, cfg *config.Config) error {
	return config.SaveConfig(configFile, cfg)
}

func (cs *ConfigService) ValidateConfig(cfg *config.Config) error {
	return cfg.Validate()
}

func (cs *ConfigService) GetDefaultConfig() *config.Config {
	return config.DefaultConfig()
}

// EnsureConfigExists writes the default config when the file is missing. It reports whether a file was created.
func (cs *ConfigService) EnsureConfigExists(configFile string) (bool, error) {
	if shared.FileExists(configFile) {
		return false, nil
	}
	return true, cs.SaveConfig(configFile, cs.GetDefaultConfig())
}
