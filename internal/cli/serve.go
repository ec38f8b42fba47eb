package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campus_connect/internal/api"
	"campus_connect/internal/config"
	"campus_connect/internal/metrics"
	"campus_connect/internal/publisher"
	"campus_connect/internal/ratelimit"
	"campus_connect/internal/service"
	"campus_connect/internal/storage/postgres"
	"campus_connect/migrations"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Migrate bool
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API until SIGINT or SIGTERM.

Rate limits are counted in Redis when it is enabled in the config file and
in process memory otherwise. RabbitMQ change events are enabled from the
config file. On shutdown in-flight requests are drained for at most
server.shutdown_grace before connections are closed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func serve(ctx context.Context, opts *ServeOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	logger := setupLogger(os.Stdout, cfg.SlogLevel())

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := connectDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("connected to database", "host", cfg.Database.Host, "dbname", cfg.Database.DBName)

	if opts.Migrate {
		if _, err := migrations.Apply(ctx, db, logger); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	metrics.Register()

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:              cfg.RabbitMQ.URL,
			Exchange:         cfg.RabbitMQ.Exchange,
			RoutingKeyPrefix: cfg.RabbitMQ.RoutingKeyPrefix,
			QueueName:        cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	workStore := postgres.NewWorkStore(db)
	eventStore := postgres.NewEventStore(db)
	txManager := postgres.NewTransactionManager(db)

	server := api.NewServer(
		service.NewOpportunityService(workStore, eventStore, txManager, pub, logger),
		service.NewResolver(workStore, eventStore, txManager, pub, logger),
		service.NewBatchService(workStore, eventStore, pub, logger),
		limiter,
		logger,
		api.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			TrustProxy:     cfg.RateLimit.TrustProxy,
			Diagnostic:     cfg.Diagnostic,
		},
	)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting campus connect", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("received shutdown signal, draining requests", "grace", cfg.Server.ShutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown timed out, closing connections", "error", err)
		_ = srv.Close()
	}
	logger.Info("stopped")
	return nil
}

// newLimiter counts requests in Redis when it is enabled and in process
// memory otherwise.
func newLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (api.Limiter, func(), error) {
	rules := rateLimitRules(cfg.RateLimit)
	if !cfg.Redis.Enabled {
		logger.Info("rate limiting in memory")
		return ratelimit.NewLocal(rules, logger), func() {}, nil
	}

	client, err := ratelimit.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("rate limiting in redis", "redis", cfg.Redis.Addr)
	return ratelimit.New(client, rules, logger), func() { _ = client.Close() }, nil
}

func rateLimitRules(cfg config.RateLimitConfig) map[ratelimit.Tier]ratelimit.Rule {
	return map[ratelimit.Tier]ratelimit.Rule{
		ratelimit.TierRead:  {Limit: cfg.Read.Requests, Window: cfg.Read.Window},
		ratelimit.TierWrite: {Limit: cfg.Write.Requests, Window: cfg.Write.Window},
		ratelimit.TierBatch: {Limit: cfg.Batch.Requests, Window: cfg.Batch.Window},
	}
}
