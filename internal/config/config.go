// This file defines the configuration structure for the application.
package config

import (
	// use Viper for loading the config.yml file.
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port        int    `mapstructure:"port"`
	Environment string `mapstructure:"environment"` // "development" or "production"
	Database    struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Downloads struct {
		Path                string   `mapstructure:"path"`
		Workers             int      `mapstructure:"workers"`
		StallTimeoutMinutes int      `mapstructure:"stall_timeout_minutes"`
		RetentionDays       int      `mapstructure:"retention_days"` // 0 keeps files forever
		SuspendedPlatforms  []string `mapstructure:"suspended_platforms"`
	} `mapstructure:"downloads"`
	Auth struct {
		CookieFile    string `mapstructure:"cookie_file"`    // yt-dlp cookies.txt
		CookieBrowser string `mapstructure:"cookie_browser"` // e.g. "chrome"; ignored in production
		Username      string `mapstructure:"username"`
		Password      string `mapstructure:"password"`
	} `mapstructure:"auth"`
	RateLimit struct {
		PerMinute int    `mapstructure:"per_minute"` // 0 disables submit rate limiting
		RedisAddr string `mapstructure:"redis_addr"`
	} `mapstructure:"rate_limit"`
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or "yaml"
	viper.AddConfigPath(".")      // looking for config in the current directory
	viper.AddConfigPath("/etc/saveloop/")

	// --- Environment Variable Overrides ---
	// This tells Viper to look for environment variables with a "SAVELOOP_" prefix.
	// e.g., SAVELOOP_DATABASE_PATH will override the `database.path` key.
	viper.SetEnvPrefix("SAVELOOP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Set default values
	viper.SetDefault("port", 8080)
	viper.SetDefault("environment", "development")
	viper.SetDefault("database.path", "./saveloop.db")
	viper.SetDefault("downloads.path", "./downloads")
	viper.SetDefault("downloads.workers", 3)
	viper.SetDefault("downloads.stall_timeout_minutes", 120)
	viper.SetDefault("downloads.retention_days", 0)
	viper.SetDefault("downloads.suspended_platforms", []string{})
	viper.SetDefault("auth.cookie_file", "")
	viper.SetDefault("auth.cookie_browser", "")
	viper.SetDefault("auth.username", "")
	viper.SetDefault("auth.password", "")
	viper.SetDefault("rate_limit.per_minute", 10)
	viper.SetDefault("rate_limit.redis_addr", "")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error and use defaults
		} else {
			// Config file was found but another error was produced
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// PlatformSuspended reports whether downloads for the given platform tag
// are administratively paused.
func (c *Config) PlatformSuspended(tag string) bool {
	for _, p := range c.Downloads.SuspendedPlatforms {
		if strings.EqualFold(p, tag) {
			return true
		}
	}
	return false
}
