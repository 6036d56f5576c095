package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"server-relay/core/config"
	"server-relay/core/database"
	"server-relay/core/loader"
	"server-relay/core/logger"
	"server-relay/core/scheduler"
	"server-relay/core/storage"
	"server-relay/feature/archive"
	"server-relay/feature/history"
	"server-relay/feature/servers"
	"server-relay/feature/servers/poller"
	"server-relay/feature/servers/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	_ "server-relay/docs/swagger"
)

// @title Server Relay API
// @version 1.0
// @description Tracks game servers announced in a Discord channel.
// @host localhost:5000
// @BasePath /

const shutdownTimeout = 10 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the relay server",
	Long: `Starts the HTTP server, the Discord poll loop, the expiry sweeper and
every optional feature whose backend is configured.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd.Context())
	},
}

func runStart(parent context.Context) error {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := servers.NewService(store.New(), cfg.Store, logg)

	hist := history.NewFeature(connectHistory(cfg, logg), logg)
	arch := archive.NewFeature(cfg.Archive, cfg.Storage, connectArchive(cfg, logg), svc, logger.WithComponent(logg, "archive"))

	app := newApp(cfg, logg)

	mgr := loader.NewManager()
	mgr.Register(servers.NewFeature(svc))
	mgr.Register(hist)
	mgr.Register(arch)

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	if hist.IsEnabled() {
		svc.SetRecorder(hist.Repository())
	}

	sched, err := scheduler.New(logger.WithComponent(logg, "scheduler"))
	if err != nil {
		return err
	}
	defer sched.Stop()

	if err := scheduleJobs(ctx, sched, cfg, svc, arch.Exporter(), logg); err != nil {
		return err
	}

	var ingestor poller.Ingestor = svc
	if cfg.Poller.ForwardURL != "" {
		ingestor = poller.NewForwarder(cfg.Poller.ForwardURL, cfg.Poller.ForwardTimeout())
		logg.Info("Forwarding polled records", zap.String("url", cfg.Poller.ForwardURL))
	}
	p, err := newPoller(cfg, ingestor, logg)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logg.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := app.Listen(cfg.Server.Addr()); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(shutdownTimeout)
	})
	if p != nil {
		g.Go(func() error {
			return p.Run(gctx)
		})
	}

	return g.Wait()
}

// connectHistory returns nil when the history database is disabled or
// unreachable.
func connectHistory(cfg *config.Config, logg *zap.Logger) *gorm.DB {
	if !cfg.Database.Enabled {
		return nil
	}
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Warn("Optional history database connection failed", zap.Error(err))
		return nil
	}
	logg.Info("Connected to history database", zap.String("host", cfg.Database.Host))
	return db
}

// connectArchive returns nil when archiving is disabled or misconfigured.
func connectArchive(cfg *config.Config, logg *zap.Logger) storage.Client {
	if !cfg.Archive.Enabled {
		return nil
	}
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Optional storage client failed", zap.Error(err))
		return nil
	}
	return client
}

func scheduleJobs(ctx context.Context, sched *scheduler.Scheduler, cfg *config.Config, svc *servers.Service, exp *archive.Exporter, logg *zap.Logger) error {
	if err := sched.Every("sweep", cfg.Store.SweepInterval(), func() {
		svc.Sweep()
	}); err != nil {
		return err
	}

	if exp == nil || cfg.Archive.Interval() <= 0 {
		return nil
	}
	l := logger.WithComponent(logg, "archive")
	interval := cfg.Archive.Interval()
	return sched.Every("archive", interval, func() {
		jobCtx, cancel := context.WithTimeout(ctx, interval)
		defer cancel()
		if _, err := exp.Export(jobCtx); err != nil {
			l.Warn("Scheduled export failed", zap.Error(err))
		}
	})
}

func init() {
	RootCmd.AddCommand(startCmd)
}
