package app

import (
	"context"
	"fmt"
	"io"

	"shelter-pet-tracker/internal/adapters/storage/jsonfile"
	mem "shelter-pet-tracker/internal/adapters/storage/memory"
	"shelter-pet-tracker/internal/adapters/storage/sqlite"
	"shelter-pet-tracker/internal/domain/animals"
	"shelter-pet-tracker/internal/platform/config"
	"shelter-pet-tracker/internal/platform/logger"
	"shelter-pet-tracker/internal/platform/metrics"
)

// App junta store, service y métricas según la configuración.
type App struct {
	Config  config.Config
	Logger  logger.Logger
	Metrics *metrics.Metrics
	Store   *animals.Store
	Service *animals.Service

	closers []io.Closer
}

// Open arma el backend elegido y carga la colección.
func Open(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.NewNop()
	}

	backend, closer, location, err := openBackend(cfg.Storage)
	if err != nil {
		return nil, err
	}

	m, err := metrics.New(nil)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	storeLog := log.With(map[string]any{"component": "store", "backend": cfg.Storage.Backend})
	store := animals.NewStore(backend, storeLog)
	items := store.Load(ctx)
	storeLog.Debug("animals loaded", map[string]any{"count": len(items), "location": location})

	svc := animals.NewService(store, animals.Options{
		Logger:   log.With(map[string]any{"component": "animals"}),
		Recorder: m,
	})

	a := &App{
		Config:  cfg,
		Logger:  log,
		Metrics: m,
		Store:   store,
		Service: svc,
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a, nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func openBackend(sc config.StorageConfig) (animals.Persister, io.Closer, string, error) {
	switch sc.Backend {
	case config.BackendJSON, "":
		s := jsonfile.New(sc.Path)
		return s, nil, s.Path(), nil
	case config.BackendSQLite:
		s, err := sqlite.Open(sc.Path)
		if err != nil {
			return nil, nil, "", err
		}
		return s, s, s.Path(), nil
	case config.BackendMemory:
		return mem.NewAnimalRepo(), nil, "memory", nil
	default:
		return nil, nil, "", fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}

// NewLogger crea el logger a partir de la sección log de la configuración.
func NewLogger(cfg config.Config, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.AppName,
		Output: out,
	})
}
