// This test file verifies the configuration loading logic using Viper.

package config

import (
	"os"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no config file", func(t *testing.T) {
		// Ensure no config file exists for this test
		os.Remove("config.yml")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if default values are set
		if cfg.Port != 8080 {
			t.Errorf("Expected default port 8080, got %d", cfg.Port)
		}
		if cfg.Database.Path != "./saveloop.db" {
			t.Errorf("Expected default db path './saveloop.db', got '%s'", cfg.Database.Path)
		}
		if cfg.Downloads.Path != "./downloads" {
			t.Errorf("Expected default downloads path './downloads', got '%s'", cfg.Downloads.Path)
		}
		if cfg.Downloads.Workers != 3 {
			t.Errorf("Expected 3 default workers, got %d", cfg.Downloads.Workers)
		}
		if cfg.Environment != "development" {
			t.Errorf("Expected default environment 'development', got '%s'", cfg.Environment)
		}
		if cfg.RateLimit.PerMinute != 10 {
			t.Errorf("Expected default rate limit 10/min, got %d", cfg.RateLimit.PerMinute)
		}
	})

	t.Run("Loads from config file", func(t *testing.T) {
		// Create a temporary config file for this test
		configContent := `
port: 9999
environment: production
database:
  path: "/tmp/test.db"
downloads:
  path: "/tmp/test-downloads"
  workers: 5
  suspended_platforms:
    - youtube
auth:
  cookie_file: "/tmp/cookies.txt"
unknown_setting: "should be ignored"
`
		// Create the config file in the current directory so Viper can find it.
		// Note: `t.TempDir()` is not used here because Viper looks in the CWD.
		configPath := "config.yml"
		if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
			t.Fatalf("Failed to write test config file: %v", err)
		}
		// Clean up the file after the test
		defer os.Remove(configPath)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() returned an error: %v", err)
		}

		// Check if values from the file were loaded
		if cfg.Port != 9999 {
			t.Errorf("Expected port 9999, got %d", cfg.Port)
		}
		if cfg.Database.Path != "/tmp/test.db" {
			t.Errorf("Expected db path '/tmp/test.db', got '%s'", cfg.Database.Path)
		}
		if cfg.Downloads.Path != "/tmp/test-downloads" {
			t.Errorf("Expected downloads path '/tmp/test-downloads', got '%s'", cfg.Downloads.Path)
		}
		if cfg.Downloads.Workers != 5 {
			t.Errorf("Expected 5 workers, got %d", cfg.Downloads.Workers)
		}
		if cfg.Auth.CookieFile != "/tmp/cookies.txt" {
			t.Errorf("Expected cookie file '/tmp/cookies.txt', got '%s'", cfg.Auth.CookieFile)
		}
		if cfg.Downloads.StallTimeoutMinutes != 120 {
			t.Errorf("Expected default stall timeout of 120, got %d", cfg.Downloads.StallTimeoutMinutes)
		}
		if !cfg.PlatformSuspended("YouTube") {
			t.Errorf("Expected youtube to be suspended (case-insensitive)")
		}
		if cfg.PlatformSuspended("vimeo") {
			t.Errorf("Did not expect vimeo to be suspended")
		}
	})
}
