package gymmembership

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/console/handlers/analytics"
	"github.com/magabrotheeeer/gym-membership/internal/console/handlers/login"
	"github.com/magabrotheeeer/gym-membership/internal/console/handlers/register"
	"github.com/magabrotheeeer/gym-membership/internal/console/menu"
	"github.com/magabrotheeeer/gym-membership/internal/console/prompt"
	"github.com/magabrotheeeer/gym-membership/internal/events"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/metrics"
	"github.com/magabrotheeeer/gym-membership/internal/services/membership"
	"github.com/magabrotheeeer/gym-membership/internal/storage"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	menu      *menu.Menu
	server    *http.Server
	publisher *events.Publisher
	logger    *slog.Logger
}

// New открывает хранилище и собирает консоль. Ошибку возвращает только
// повреждённый файл хранилища или невозможность подготовить PIN администратора.
// Недоступный RabbitMQ не фатален: события просто не публикуются.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, in io.Reader, out io.Writer) (*App, error) {
	store, err := storage.New(cfg.StoragePath, logger)
	if err != nil {
		return nil, err
	}

	pinHash, err := cfg.AdminPINHash()
	if err != nil {
		return nil, err
	}
	cfg.PIN = ""

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	app := &App{logger: logger}

	var publisher membership.EventPublisher
	if cfg.URLRabbitMQ != "" {
		app.publisher, err = connectPublisher(ctx, cfg.RabbitMQ)
		if err != nil {
			logger.Warn("rabbitmq unavailable, registration events disabled", sl.Err(err))
		} else {
			publisher = app.publisher
		}
	}

	svc := membership.New(store, publisher, m, pinHash, logger)

	p := prompt.New(in, out)
	app.menu = menu.New(logger, p,
		register.New(logger, svc, p),
		login.New(logger, svc, p),
		analytics.New(logger, svc, p),
	)

	if cfg.AddressMetrics != "" {
		router := chi.NewRouter()
		RegisterRoutes(router, logger, reg, svc)
		app.server = &http.Server{
			Addr:              cfg.AddressMetrics,
			Handler:           router,
			ReadHeaderTimeout: shutdownTimeout,
		}
	}

	return app, nil
}

func connectPublisher(ctx context.Context, cfg config.RabbitMQ) (*events.Publisher, error) {
	conn, err := events.Connect(ctx, cfg.URLRabbitMQ, cfg.Retries, cfg.RetryDelay)
	if err != nil {
		return nil, err
	}
	publisher, err := events.NewPublisher(conn, cfg.Exchange)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return publisher, nil
}

// Run запускает консольный цикл и, если настроен, сервер метрик.
// Возвращается после выхода из меню или отмены ctx. Во втором случае
// горутина меню может остаться заблокированной на чтении ввода до завершения процесса.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	if a.server != nil {
		g.Go(func() error {
			a.logger.Info("metrics server starting on", slog.String("address", a.server.Addr))
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			timeoutCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
			defer stop()
			return a.server.Shutdown(timeoutCtx)
		})
	}

	menuErr := make(chan error, 1)
	go func() {
		menuErr <- a.menu.Run(gctx)
	}()

	var err error
	select {
	case err = <-menuErr:
	case <-gctx.Done():
		a.logger.Info("console interrupted")
	}
	cancel()

	if werr := g.Wait(); werr != nil && err == nil {
		err = werr
	}
	if a.publisher != nil {
		if cerr := a.publisher.Close(); cerr != nil {
			a.logger.Warn("failed to close rabbitmq publisher", sl.Err(cerr))
		}
	}
	return err
}
