package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"gtd-task-management/config/sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	SQLite sqlite.Config

	// Engine behaviour
	Engine EngineConfig

	// Remote sync
	GoogleTasks GoogleTasksConfig
	Webhook     WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port   int
	Mode   string
	APIKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// EngineConfig controls date-sensitive evaluation.
type EngineConfig struct {
	// Timezone resolves relative date expressions ("tomorrow", "next
	// friday") and day boundaries.
	Timezone string
	// SweepInterval is how often the periodic dependency re-check runs,
	// e.g. "5m". Empty disables it.
	SweepInterval string
}

type GoogleTasksConfig struct {
	CredentialsPath string
	ListID          string
	// SyncInterval is how often the syncer runs a full cycle, e.g. "15m".
	SyncInterval string
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = viper.GetString("http_server.api_key")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.SQLite.Path = viper.GetString("sqlite.path")
	if dbPath := viper.GetString("sqlite_path"); dbPath != "" {
		cfg.SQLite.Path = dbPath
	}

	// Engine
	cfg.Engine.Timezone = viper.GetString("engine.timezone")
	cfg.Engine.SweepInterval = viper.GetString("engine.sweep_interval")

	// Remote sync
	cfg.GoogleTasks.CredentialsPath = viper.GetString("google_tasks.credentials_path")
	cfg.GoogleTasks.ListID = viper.GetString("google_tasks.list_id")
	cfg.GoogleTasks.SyncInterval = viper.GetString("google_tasks.sync_interval")
	if googleCreds := viper.GetString("google_tasks_credentials"); googleCreds != "" {
		cfg.GoogleTasks.CredentialsPath = googleCreds
	}

	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	if secret := viper.GetString("webhook_secret"); secret != "" {
		cfg.Webhook.Secret = secret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("sqlite.path", "gtd.db")
	viper.SetDefault("engine.timezone", "UTC")
	viper.SetDefault("engine.sweep_interval", "5m")
	viper.SetDefault("google_tasks.list_id", "@default")
	viper.SetDefault("google_tasks.sync_interval", "15m")
	viper.SetDefault("webhook.enabled", true)
	viper.SetDefault("webhook.rate_limit_per_min", 60)
}
