// Package extract wraps the yt-dlp engine behind option bundles, tiered
// authentication, and a fetch call that reports progress and honors
// cancellation. Platform strategies compose Options layers and hand them
// to a Fetcher; nothing in here knows about users, quotas, or storage.
package extract

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// ChromeUserAgent is the desktop browser identity presented to the
// platforms, both by yt-dlp and by any page scraping that precedes it.
// A real Chrome header keeps bot checks from rejecting the request
// outright on platforms that fingerprint the default client.
const ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0 Safari/537.36"

// Options is one layer of yt-dlp configuration. Layers are plain values:
// composing them never mutates a shared template, so platform defaults
// stay pristine no matter what a caller stacks on top.
type Options struct {
	Format              string
	OutputTemplate      string // overrides the generated per-job template when set
	NoPlaylist          bool
	Retries             int
	FragmentRetries     int
	ExtractorRetries    int
	FileAccessRetries   int
	ConcurrentFragments int
	SocketTimeoutSec    int
	UserAgent           string
	CookieFile          string
	CookieBrowser       string
	Username            string
	Password            string
	GeoBypass           bool
	NoCheckCertificates bool
	MergeFormat         string   // container to merge split streams into, e.g. "mp4"
	ExtractorArgs       []string // raw IE_KEY:ARGS pairs passed through
}

// Baseline returns the network-resilience layer every download starts
// from. Platform defaults and caller extras are merged on top of it.
func Baseline() Options {
	return Options{
		NoPlaylist:          true,
		Retries:             15,
		FragmentRetries:     15,
		ExtractorRetries:    10,
		FileAccessRetries:   5,
		ConcurrentFragments: 5,
		SocketTimeoutSec:    30,
		UserAgent:           ChromeUserAgent,
	}
}

// Merge flattens option layers into one. Later layers win: a non-empty
// string or positive int replaces the earlier value, boolean flags
// accumulate (a later layer can switch a flag on, never off), and a
// non-nil ExtractorArgs slice replaces the earlier one wholesale.
func Merge(layers ...Options) Options {
	var out Options
	for _, l := range layers {
		if l.Format != "" {
			out.Format = l.Format
		}
		if l.OutputTemplate != "" {
			out.OutputTemplate = l.OutputTemplate
		}
		if l.NoPlaylist {
			out.NoPlaylist = true
		}
		if l.Retries > 0 {
			out.Retries = l.Retries
		}
		if l.FragmentRetries > 0 {
			out.FragmentRetries = l.FragmentRetries
		}
		if l.ExtractorRetries > 0 {
			out.ExtractorRetries = l.ExtractorRetries
		}
		if l.FileAccessRetries > 0 {
			out.FileAccessRetries = l.FileAccessRetries
		}
		if l.ConcurrentFragments > 0 {
			out.ConcurrentFragments = l.ConcurrentFragments
		}
		if l.SocketTimeoutSec > 0 {
			out.SocketTimeoutSec = l.SocketTimeoutSec
		}
		if l.UserAgent != "" {
			out.UserAgent = l.UserAgent
		}
		if l.CookieFile != "" {
			out.CookieFile = l.CookieFile
		}
		if l.CookieBrowser != "" {
			out.CookieBrowser = l.CookieBrowser
		}
		if l.Username != "" {
			out.Username = l.Username
		}
		if l.Password != "" {
			out.Password = l.Password
		}
		if l.GeoBypass {
			out.GeoBypass = true
		}
		if l.NoCheckCertificates {
			out.NoCheckCertificates = true
		}
		if l.MergeFormat != "" {
			out.MergeFormat = l.MergeFormat
		}
		if l.ExtractorArgs != nil {
			out.ExtractorArgs = l.ExtractorArgs
		}
	}
	return out
}

// FormatFor maps a content kind and requested quality onto a yt-dlp
// format selector. Without ffmpeg there is nothing to merge split
// streams with, so selection is restricted to pre-muxed mp4 and capped
// at 720p (the tallest pre-muxed rendition most platforms publish).
func FormatFor(kind, quality string, haveFFmpeg bool) string {
	switch kind {
	case "image":
		return "best[height<=4096]/best"
	case "audio":
		return "bestaudio/best"
	}

	q := strings.ToLower(strings.TrimSpace(quality))
	switch q {
	case "audio", "audio only", "audio-only":
		return "bestaudio/best"
	case "1080p", "720p", "480p", "360p":
		h := strings.TrimSuffix(q, "p")
		if haveFFmpeg {
			return fmt.Sprintf("bv*[height=%s]+ba/b[height=%s]/bv*+ba/best", h, h)
		}
		if q == "1080p" {
			h = "720"
		}
		return fmt.Sprintf("best[height=%s][ext=mp4]/best[height<=%s][ext=mp4]/best[ext=mp4]/best", h, h)
	}

	if haveFFmpeg {
		return "bv*+ba/b"
	}
	return "best[ext=mp4]/best"
}

var (
	ffmpegOnce  sync.Once
	ffmpegFound bool
)

// HaveFFmpeg reports whether ffmpeg is on PATH. Checked once per process;
// installing ffmpeg mid-flight requires a restart to be picked up.
func HaveFFmpeg() bool {
	ffmpegOnce.Do(func() {
		_, err := exec.LookPath("ffmpeg")
		ffmpegFound = err == nil
	})
	return ffmpegFound
}
