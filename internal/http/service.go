package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"

	"github.com/tuanvumaihuynh/catalog-service/internal/config"
	"github.com/tuanvumaihuynh/catalog-service/internal/http/metric"
	"github.com/tuanvumaihuynh/catalog-service/internal/http/middleware"
	"github.com/tuanvumaihuynh/catalog-service/internal/http/swagger"
	"github.com/tuanvumaihuynh/catalog-service/internal/service"
	"github.com/tuanvumaihuynh/catalog-service/internal/storage/db"
	"github.com/tuanvumaihuynh/catalog-service/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	productSvc  service.ProductService
	variantSvc  service.VariantService
	categorySvc service.CategoryService
	health      db.HealthChecker
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	productSvc service.ProductService,
	variantSvc service.VariantService,
	categorySvc service.CategoryService,
	health db.HealthChecker,
) *Service {
	return &Service{
		cfg:         cfg,
		logger:      log.With(slog.String("service", "http")),
		metrics:     metric.New(),
		productSvc:  productSvc,
		variantSvc:  variantSvc,
		categorySvc: categorySvc,
		health:      health,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	if err := s.RegisterHandlers(r); err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) error {
	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("create validator: %w", err)
	}

	respond := responder{logger: s.logger}

	productH := newProductHandler(s.productSvc, v, respond)
	variantH := newVariantHandler(s.variantSvc, respond)
	categoryH := newCategoryHandler(s.categorySvc, respond)
	healthH := newHealthHandler(s.health, respond)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productH.list)
		r.Post("/", productH.create)
		r.Get("/{id}", productH.get)
		r.Put("/{id}", productH.update)
		r.Delete("/{id}", productH.delete)
	})

	r.Route("/variants", func(r chi.Router) {
		r.Get("/{id}", variantH.get)
		r.Put("/{id}", variantH.update)
		r.Delete("/{id}", variantH.delete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", categoryH.list)
		r.Post("/", categoryH.create)
	})

	r.Get("/healthz", healthH.check)
	r.Handle(middleware.MetricsPath, s.metrics.Handler())

	return nil
}
