package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// AuthMaterial is the operator-supplied credential configuration. All
// fields are optional; empty material yields a single anonymous tier.
type AuthMaterial struct {
	CookieFile    string // path to a yt-dlp cookies.txt
	CookieBrowser string // browser profile to lift cookies from, e.g. "chrome"
	Username      string
	Password      string
}

// Platforms that reject anonymous clients often enough to justify a
// second, stripped attempt when the authenticated one fails.
var gatedPlatforms = map[string]bool{
	"youtube":   true,
	"instagram": true,
}

// Hosting-platform markers. Any of these set (non-empty) means the
// process is running in a deployed environment where lifting cookies
// from a local browser cannot work.
var productionMarkers = []string{
	"RENDER",
	"RAILWAY_ENVIRONMENT",
	"HEROKU",
	"VERCEL",
	"FLY_APP_NAME",
	"PRODUCTION",
}

// InProduction reports whether the process runs in a deployed
// environment: the configured environment name says so, a hosting
// platform marker is set, or the process is containerized.
func InProduction(environment string) bool {
	if strings.EqualFold(environment, "production") {
		return true
	}
	for _, key := range productionMarkers {
		if os.Getenv(key) != "" {
			return true
		}
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}

// DiscoverCookieFile resolves the cookie file to use for this attempt.
// A configured path wins but is only used while it actually exists;
// otherwise the conventional drop-in locations are probed. Called per
// attempt, so replacing the file on disk takes effect without a restart.
func DiscoverCookieFile(configured string) string {
	if configured != "" {
		if fileExists(configured) {
			return configured
		}
		return ""
	}
	for _, candidate := range []string{"cookies.txt", filepath.Join("config", "cookies.txt")} {
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// AuthTiers builds the ordered option overlays to attempt for a
// platform. Gated platforms get a fully-authenticated tier followed by a
// stripped one; everything else gets a single tier. In production the
// browser-cookie source is never used (there is no browser) and
// certificate checking is relaxed, since several hosts front yt-dlp
// traffic with middleboxes that break verification.
func AuthTiers(platform string, auth AuthMaterial, production bool) []Options {
	base := Options{Username: auth.Username, Password: auth.Password}
	if production {
		base.NoCheckCertificates = true
		if platform == "youtube" {
			// Deployed IPs get served bloated DASH/HLS manifests that
			// stall extraction; plain formats are enough there.
			base.ExtractorArgs = []string{"youtube:skip=dash,hls"}
		}
	}

	cookieFile := DiscoverCookieFile(auth.CookieFile)

	if !gatedPlatforms[platform] {
		tier := base
		tier.CookieFile = cookieFile
		return []Options{tier}
	}

	full := base
	full.CookieFile = cookieFile
	if cookieFile == "" && !production {
		full.CookieBrowser = auth.CookieBrowser
	}

	stripped := base
	stripped.GeoBypass = true

	if full.CookieFile == "" && full.CookieBrowser == "" {
		// Nothing to strip; a second identical attempt would be noise.
		return []Options{stripped}
	}
	return []Options{full, stripped}
}
