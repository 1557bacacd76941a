package router

import (
	"net/http"

	mem "animals-safety/internal/adapters/storage/memory"
	_ "animals-safety/internal/docs" // registra el doc Swagger
	"animals-safety/internal/domain/animals"
	"animals-safety/internal/middleware"
	"animals-safety/internal/platform/logger"
	"animals-safety/internal/platform/metrics"
	"animals-safety/internal/ports/notify"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger   logger.Logger   // nil => descarta
	Metrics  *metrics.Manager // nil => sin /metrics
	Notifier notify.Notifier // nil => no-op

	// Opcional: si viene, se usa este store. Si no, uno in-memory nuevo.
	Repo animals.Repository

	DefaultLocale string
}

// App es la sesión de la aplicación: dueña del store y del servicio.
type App struct {
	Handler http.Handler
	Animals *animals.Service
	Repo    animals.Repository
}

func New(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	repo := opts.Repo
	if repo == nil {
		repo = mem.NewAnimalRepo()
	}

	svcOpts := []animals.Option{
		animals.WithLogger(log.With(map[string]any{"module": "animals"})),
		animals.WithNotifier(opts.Notifier),
		animals.WithDefaultLocale(opts.DefaultLocale),
	}
	if opts.Metrics != nil {
		svcOpts = append(svcOpts, animals.WithObserver(opts.Metrics))
	}
	svc := animals.NewService(repo, svcOpts...)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	var obs middleware.HTTPObserver
	if opts.Metrics != nil {
		obs = opts.Metrics
	}
	r.Use(middleware.AccessLog(log, obs))
	r.Use(chimw.Recoverer)
	r.Use(middleware.Locale)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	animals.RegisterRoutes(r, svc)

	return &App{Handler: r, Animals: svc, Repo: repo}
}

// NewRouter es el atajo cuando solo hace falta el handler.
func NewRouter(opts Options) http.Handler {
	return New(opts).Handler
}
