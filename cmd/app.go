package cmd

import (
	"server-relay/core/config"
	"server-relay/core/discord"
	"server-relay/core/logger"
	"server-relay/core/middleware/rayid"
	"server-relay/core/middleware/requestlog"
	"server-relay/feature/servers/poller"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// newApp builds the Fiber application with the shared middleware stack.
func newApp(cfg *config.Config, logg *zap.Logger) *fiber.App {
	fcfg := fiber.Config{
		AppName:               "server-relay",
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ReadTimeout:           cfg.Server.ReadTimeout(),
	}
	if cfg.Server.BodyLimitBytes > 0 {
		fcfg.BodyLimit = cfg.Server.BodyLimitBytes
	}

	app := fiber.New(fcfg)
	app.Use(recover.New())
	app.Use(rayid.New())
	app.Use(requestlog.New(logg))
	app.Get("/swagger/*", swagger.HandlerDefault)
	return app
}

// newPoller returns nil when no upstream credentials are configured.
func newPoller(cfg *config.Config, ingestor poller.Ingestor, logg *zap.Logger, opts ...poller.Option) (*poller.Poller, error) {
	if !cfg.Discord.Enabled() {
		logg.Warn("Discord token or channel not configured, poller disabled")
		return nil, nil
	}

	client, err := discord.NewClient(cfg.Discord)
	if err != nil {
		return nil, err
	}

	opts = append(opts, poller.WithFetchTimeout(cfg.Discord.Timeout()))
	return poller.New(client, cfg.Discord.ChannelID, ingestor, cfg.Poller, logger.WithComponent(logg, "poller"), opts...), nil
}
