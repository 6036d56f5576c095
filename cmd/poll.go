package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"server-relay/core/config"
	"server-relay/core/discord"
	"server-relay/core/logger"
	"server-relay/feature/servers/models"
	"server-relay/feature/servers/poller"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	pollDryRun bool
	pollOnce   bool
	pollAfter  string
)

// pollCmd represents the poll command
var pollCmd = &cobra.Command{
	Use:   "poll",
	Short: "Run only the Discord poll loop",
	Long: `Polls the configured channel and forwards extracted records to
poller.forward_url (default: the local /receive endpoint). With --dry-run the
records are printed as JSON lines instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		if !cfg.Discord.Enabled() {
			return discord.ErrNoToken
		}

		var ingestor poller.Ingestor
		if pollDryRun {
			enc := json.NewEncoder(cmd.OutOrStdout())
			ingestor = poller.IngestFunc(func(_ context.Context, rec models.Record) error {
				return enc.Encode(rec)
			})
		} else {
			url := cfg.Poller.ForwardURL
			if url == "" {
				url = "http://127.0.0.1:" + cfg.Server.Port + "/receive"
			}
			ingestor = poller.NewForwarder(url, cfg.Poller.ForwardTimeout())
			logg.Info("Forwarding polled records", zap.String("url", url))
		}

		var opts []poller.Option
		if pollAfter != "" {
			opts = append(opts, poller.WithCursor(pollAfter))
		}
		p, err := newPoller(cfg, ingestor, logg, opts...)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if pollOnce {
			res, err := p.PollOnce(ctx)
			if err != nil {
				return err
			}
			logg.Info("Poll finished",
				zap.Int("fetched", res.Fetched),
				zap.Int("ingested", res.Ingested),
				zap.Int("skipped", res.Skipped),
				zap.Int("failed", res.Failed),
				zap.String("cursor", p.Cursor()),
			)
			return nil
		}
		return p.Run(ctx)
	},
}

func init() {
	pollCmd.Flags().BoolVar(&pollDryRun, "dry-run", false, "Print records instead of forwarding them")
	pollCmd.Flags().BoolVar(&pollOnce, "once", false, "Run a single poll cycle and exit")
	pollCmd.Flags().StringVar(&pollAfter, "after", "", "Start after this message id")
	RootCmd.AddCommand(pollCmd)
}
