package cli

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"purrfect-cats/internal/app"
	"purrfect-cats/internal/catalog"
	"purrfect-cats/internal/config"
	"purrfect-cats/internal/infra/catfact"
	"purrfect-cats/internal/infra/memory"
	pgloader "purrfect-cats/internal/infra/postgres"
	rediscache "purrfect-cats/internal/infra/redis"
	transport "purrfect-cats/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the cat page server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrations(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}
	catalogID := cfg.Catalog.ID
	if catalogID == "" {
		catalogID = catalog.DefaultID
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
	}
	redisTTL := config.Duration(cfg.Redis.TTL, 10*time.Minute)
	registryTTL := config.Duration(cfg.View.RegistryTTL, redisTTL)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()
	}

	var loader memory.CatalogLoader = memory.NewStaticCatalogLoader(catalog.Catalogs())
	if pool != nil {
		loader = pgloader.NewCatalogLoader(pool)
	}

	catalogTTL := config.Duration(cfg.Catalog.TTL, 10*time.Minute)
	var catalogs app.CatalogRepository
	if redisClient != nil {
		catalogs = rediscache.NewCatalogRepository(redisClient, loader, catalogTTL)
	} else {
		catalogs = memory.NewCatalogRepository(loader, catalogTTL)
	}

	var views app.ViewRegistry
	if redisClient != nil {
		views = rediscache.NewViewRegistry(redisClient, registryTTL)
	} else {
		views = memory.NewViewRegistry()
	}

	defaults := app.DefaultViewOptions()
	opts := app.ViewOptions{
		CarouselInterval: config.Duration(cfg.View.CarouselInterval, defaults.CarouselInterval),
		AnswerDelay:      config.Duration(cfg.View.AnswerDelay, defaults.AnswerDelay),
		FactTimeout:      config.Duration(cfg.Fact.Timeout, defaults.FactTimeout),
	}
	if redisClient != nil {
		// refresh liveness markers twice per ttl
		opts.Heartbeat = registryTTL / 2
	}
	fetcher := catfact.New(cfg.Fact.URL, &http.Client{Timeout: opts.FactTimeout})

	service := app.NewViewService(catalogs, views, fetcher, opts)
	wsHandler := transport.NewWSHandler(service, catalogID)
	api := transport.NewAPIHandler(service, catalogID)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	mux.HandleFunc("/api/catalog", api.Catalog)
	mux.HandleFunc("/api/fact", api.Fact)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:        ":" + finalPort,
		Handler:     mux,
		ReadTimeout: 15 * time.Second,
		// no WriteTimeout: it would cut long-lived websocket connections
		// Request contexts end with the process so open views are torn down on shutdown.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("starting cat page service on :%s (catalog %s)", finalPort, catalogID)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
