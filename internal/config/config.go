// internal/config/config.go
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL     string `mapstructure:"url"`
		Migrate bool   `mapstructure:"migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Auth struct {
		Enabled   bool   `mapstructure:"enabled"`
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
	App   AppConfig `mapstructure:"app"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
}

// AppConfig holds the settings the services read.
type AppConfig struct {
	RecentRoundsLimit       int    `mapstructure:"recent_rounds_limit"`
	ScoreDistributionRounds int    `mapstructure:"score_distribution_rounds"`
	Timezone                string `mapstructure:"timezone"`
	PrefillScorecard        bool   `mapstructure:"prefill_scorecard"`
}

// Location resolves Timezone, falling back to UTC.
func (a AppConfig) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		slog.Warn("Unknown timezone in config, using UTC", "timezone", a.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

// DefaultAppConfig is used by tests and whenever no config file is present.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		RecentRoundsLimit:       DefaultRecentRoundsLimit,
		ScoreDistributionRounds: DefaultScoreDistributionRounds,
		Timezone:                DefaultTimezone,
		PrefillScorecard:        DefaultPrefillScorecard,
	}
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 環境変数は APP_ 接頭辞で読み込む (例: APP_DATABASE_URL, APP_REDIS_ADDR)
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	viper.BindEnv("auth.enabled", "AUTH_ENABLED") // 接頭辞なしの環境変数も受け付ける
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("auth.jwt_secret", "JWT_SECRET")

	// --- デフォルト値の設定 ---
	viper.SetDefault("server.port", DefaultServerPort)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)
	viper.SetDefault("auth.enabled", DefaultAuthEnabled)
	viper.SetDefault("database.migrate", DefaultDatabaseMigrate)
	viper.SetDefault("app.recent_rounds_limit", DefaultRecentRoundsLimit)
	viper.SetDefault("app.score_distribution_rounds", DefaultScoreDistributionRounds)
	viper.SetDefault("app.timezone", DefaultTimezone)
	viper.SetDefault("app.prefill_scorecard", DefaultPrefillScorecard)
	viper.SetDefault("redis.ttl", DefaultRedisTTL)
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{"Accept", "Authorization", "Content-Type", "X-User-ID"})
	viper.SetDefault("cors.max_age", 300)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Warn("Config file not found, using defaults and environment variables")
		} else {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		return fmt.Errorf("unmarshalling config: %w", err)
	}

	applyDefaults(&Cfg)

	if Cfg.Database.URL == "" {
		slog.Warn("Database URL is not set in config")
	}
	if Cfg.Auth.Enabled && Cfg.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.enabled is true but auth.jwt_secret is empty")
	}

	slog.Info("Config loaded",
		"server_port", Cfg.Server.Port,
		"auth_enabled", Cfg.Auth.Enabled,
		"redis_enabled", Cfg.Redis.Addr != "",
		"timezone", Cfg.App.Timezone,
	)
	return nil
}

// applyDefaults fixes values that are present but unusable.
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.App.RecentRoundsLimit <= 0 {
		c.App.RecentRoundsLimit = DefaultRecentRoundsLimit
	}
	if c.App.ScoreDistributionRounds <= 0 {
		c.App.ScoreDistributionRounds = DefaultScoreDistributionRounds
	}
	if c.App.Timezone == "" {
		c.App.Timezone = DefaultTimezone
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = DefaultRedisTTL
	}
}
