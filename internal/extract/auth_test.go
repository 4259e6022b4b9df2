package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/saveloop/saveloop/internal/extract"
)

func writeCookieFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("# Netscape HTTP Cookie File\n"), 0644); err != nil {
		t.Fatalf("Failed to write cookie file %s: %v", path, err)
	}
}

func clearProductionMarkers(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RENDER", "RAILWAY_ENVIRONMENT", "HEROKU", "VERCEL", "FLY_APP_NAME", "PRODUCTION"} {
		t.Setenv(k, "")
	}
}

func TestInProduction(t *testing.T) {
	t.Run("Environment name", func(t *testing.T) {
		clearProductionMarkers(t)
		if !extract.InProduction("production") {
			t.Error("environment 'production' should count as production")
		}
		if !extract.InProduction("Production") {
			t.Error("the environment name check should be case-insensitive")
		}
	})

	t.Run("Hosting platform marker", func(t *testing.T) {
		clearProductionMarkers(t)
		t.Setenv("RENDER", "true")
		if !extract.InProduction("development") {
			t.Error("a hosting marker should force production mode")
		}
	})

	t.Run("Development default", func(t *testing.T) {
		if _, err := os.Stat("/.dockerenv"); err == nil {
			t.Skip("running inside a container")
		}
		clearProductionMarkers(t)
		if extract.InProduction("development") {
			t.Error("no markers and a development environment should not be production")
		}
	})
}

func TestDiscoverCookieFile(t *testing.T) {
	t.Run("Nothing configured, nothing on disk", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if got := extract.DiscoverCookieFile(""); got != "" {
			t.Errorf("Expected no cookie file, got %q", got)
		}
	})

	t.Run("Default drop-in location", func(t *testing.T) {
		t.Chdir(t.TempDir())
		writeCookieFile(t, "cookies.txt")
		if got := extract.DiscoverCookieFile(""); got != "cookies.txt" {
			t.Errorf("Expected cookies.txt, got %q", got)
		}
	})

	t.Run("Config subdirectory fallback", func(t *testing.T) {
		t.Chdir(t.TempDir())
		if err := os.MkdirAll("config", 0755); err != nil {
			t.Fatal(err)
		}
		writeCookieFile(t, filepath.Join("config", "cookies.txt"))
		if got := extract.DiscoverCookieFile(""); got != filepath.Join("config", "cookies.txt") {
			t.Errorf("Expected the config/ fallback, got %q", got)
		}
	})

	t.Run("Configured path wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "my_cookies.txt")
		writeCookieFile(t, path)
		if got := extract.DiscoverCookieFile(path); got != path {
			t.Errorf("Expected the configured path, got %q", got)
		}
	})

	t.Run("Configured but missing disables discovery", func(t *testing.T) {
		t.Chdir(t.TempDir())
		writeCookieFile(t, "cookies.txt") // discovery would find this
		if got := extract.DiscoverCookieFile(filepath.Join(t.TempDir(), "absent.txt")); got != "" {
			t.Errorf("A configured-but-missing path must not fall back to discovery, got %q", got)
		}
	})
}

func TestAuthTiers(t *testing.T) {
	t.Run("Ungated platform gets one tier", func(t *testing.T) {
		t.Chdir(t.TempDir())
		tiers := extract.AuthTiers("tiktok", extract.AuthMaterial{Username: "u", Password: "p", CookieBrowser: "chrome"}, false)
		if len(tiers) != 1 {
			t.Fatalf("Expected 1 tier, got %d", len(tiers))
		}
		if tiers[0].Username != "u" || tiers[0].Password != "p" {
			t.Error("Credentials should be carried in the single tier")
		}
		if tiers[0].CookieBrowser != "" {
			t.Error("Browser cookies are reserved for gated platforms")
		}
	})

	t.Run("Gated platform with no material", func(t *testing.T) {
		t.Chdir(t.TempDir())
		tiers := extract.AuthTiers("youtube", extract.AuthMaterial{}, false)
		if len(tiers) != 1 {
			t.Fatalf("No auth material should collapse to 1 tier, got %d", len(tiers))
		}
		if !tiers[0].GeoBypass {
			t.Error("The stripped tier should carry the geo-bypass flag")
		}
	})

	t.Run("Gated platform with a cookie file", func(t *testing.T) {
		cookie := filepath.Join(t.TempDir(), "cookies.txt")
		writeCookieFile(t, cookie)
		tiers := extract.AuthTiers("instagram", extract.AuthMaterial{CookieFile: cookie}, false)
		if len(tiers) != 2 {
			t.Fatalf("Expected 2 tiers, got %d", len(tiers))
		}
		if tiers[0].CookieFile != cookie {
			t.Errorf("First tier should use the cookie file, got %q", tiers[0].CookieFile)
		}
		if tiers[1].CookieFile != "" || tiers[1].CookieBrowser != "" {
			t.Error("Stripped tier must not carry cookie material")
		}
		if !tiers[1].GeoBypass {
			t.Error("Stripped tier should carry the geo-bypass flag")
		}
	})

	t.Run("Browser cookies in development", func(t *testing.T) {
		t.Chdir(t.TempDir())
		tiers := extract.AuthTiers("youtube", extract.AuthMaterial{CookieBrowser: "chrome"}, false)
		if len(tiers) != 2 {
			t.Fatalf("Expected 2 tiers, got %d", len(tiers))
		}
		if tiers[0].CookieBrowser != "chrome" {
			t.Errorf("First tier should lift browser cookies, got %q", tiers[0].CookieBrowser)
		}
		if tiers[1].CookieBrowser != "" {
			t.Error("Stripped tier must not keep the browser source")
		}
	})

	t.Run("Production never uses browser cookies", func(t *testing.T) {
		t.Chdir(t.TempDir())
		tiers := extract.AuthTiers("youtube", extract.AuthMaterial{CookieBrowser: "chrome"}, true)
		if len(tiers) != 1 {
			t.Fatalf("Browser-only material in production should collapse to 1 tier, got %d", len(tiers))
		}
		if tiers[0].CookieBrowser != "" {
			t.Error("There is no browser to lift cookies from in production")
		}
		if !tiers[0].NoCheckCertificates {
			t.Error("Production tiers should relax certificate checking")
		}
		if len(tiers[0].ExtractorArgs) == 0 {
			t.Error("Production youtube tiers should skip the heavy manifests")
		}
	})

	t.Run("Production with a cookie file keeps two tiers", func(t *testing.T) {
		cookie := filepath.Join(t.TempDir(), "cookies.txt")
		writeCookieFile(t, cookie)
		tiers := extract.AuthTiers("youtube", extract.AuthMaterial{CookieFile: cookie}, true)
		if len(tiers) != 2 {
			t.Fatalf("Expected 2 tiers, got %d", len(tiers))
		}
		if tiers[0].CookieFile != cookie {
			t.Errorf("Cookie files stay valid in production, got %q", tiers[0].CookieFile)
		}
	})
}
