package extract

import (
	"errors"
	"strings"
)

// ErrCancelled marks a download stopped by the user. It is a neutral
// outcome, not a failure: callers must not record an error for it.
var ErrCancelled = errors.New("download cancelled")

// Normalize turns a raw engine error into a short message safe to show
// the requesting user. Raw yt-dlp output carries local paths, cookie
// locations and extractor internals; none of that belongs in an API
// response or the stored error message.
func Normalize(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	switch {
	case containsAny(msg, "age-restricted", "age restricted", "confirm your age"):
		return "This content is age-restricted and cannot be downloaded."
	case containsAny(msg, "private", "login required", "sign in", "account required", "members-only"):
		return "This content is private or requires an account to view."
	case containsAny(msg, "video unavailable", "content isn't available", "no longer available", "has been removed", "404"):
		return "This content is unavailable. It may have been removed."
	case containsAny(msg, "available in your country", "geo restricted", "geo-restricted", "blocked it in your country"):
		return "This content is not available in this region."
	case containsAny(msg, "no space left"):
		return "Server storage is full. Please try again later."
	case containsAny(msg, "timed out", "timeout", "connection reset", "connection refused", "temporary failure", "network is unreachable", "429"):
		return "Network problem while downloading. Please try again."
	case containsAny(msg, "unsupported url", "no suitable extractor"):
		return "This URL is not supported."
	default:
		return "Download failed. Please check the URL and try again."
	}
}

func containsAny(haystack string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
