package config

import (
	"fmt"
	"reflect"
	"strings"

	"server-relay/core/database"
	"server-relay/core/discord"
	"server-relay/core/logger"
	"server-relay/core/server"
	"server-relay/core/storage"
	"server-relay/feature/archive"
	"server-relay/feature/servers/poller"
	"server-relay/feature/servers/store"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Discord holds credentials and the channel to poll.
	Discord discord.Config `mapstructure:"discord"`
	// Poller holds the poll loop cadence and hand-off settings.
	Poller poller.Config `mapstructure:"poller"`
	// Store holds the entity TTL and sweep cadence.
	Store store.Config `mapstructure:"store"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional history database.
	Database database.Config `mapstructure:"database"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Archive holds snapshot export settings.
	Archive archive.Config `mapstructure:"archive"`
}

// aliases maps config keys to the environment variables read for them, in
// priority order. Keys not listed use the default KEY_NAME mapping only.
var aliases = map[string][]string{
	"server.port":          {"SERVER_PORT", "PORT"},
	"discord.token":        {"DISCORD_TOKEN", "TOKEN"},
	"discord.channel_id":   {"DISCORD_CHANNEL_ID", "CHANNEL_ID"},
	"poller.interval_ms":   {"POLLER_INTERVAL_MS", "POLL_INTERVAL_MS"},
	"store.expiry_seconds": {"STORE_EXPIRY_SECONDS", "EXPIRY_SECONDS"},
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envs := range aliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks field constraints declared with `validate` tags.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
