package router

import (
	"context"
	"net/http"

	mem "shelter-pet-tracker/internal/adapters/storage/memory"
	"shelter-pet-tracker/internal/domain/animals"
	"shelter-pet-tracker/internal/middleware"
	"shelter-pet-tracker/internal/platform/logger"
	"shelter-pet-tracker/internal/platform/metrics"

	_ "shelter-pet-tracker/docs" // registra el spec swagger

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, se usa un store in-memory (modo dev / tests).
	Service *animals.Service

	Logger  logger.Logger
	Metrics *metrics.Metrics // nil = sin /metrics
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	var obs middleware.HTTPObserver
	if opts.Metrics != nil {
		obs = opts.Metrics
	}
	r.Use(middleware.RequestLog(log.With(map[string]any{"component": "http"}), obs))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	svc := opts.Service
	if svc == nil {
		store := animals.NewStore(mem.NewAnimalRepo(), log)
		store.Load(context.Background())
		svc = animals.NewService(store, animals.Options{Logger: log})
	}

	animals.RegisterRoutes(r, svc)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
