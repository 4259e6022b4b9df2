package extract

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lrstanley/go-ytdlp"

	"github.com/saveloop/saveloop/internal/media"
)

// How often the engine reports transfer progress.
const progressInterval = 500 * time.Millisecond

// Hooks lets a caller observe a running fetch. Every field is optional.
// ShouldCancel is polled on each progress event; returning true aborts
// the run with ErrCancelled.
type Hooks struct {
	OnProgress   func(pct int)
	OnStatus     func(msg string)
	ShouldCancel func() bool
}

// Request identifies what to fetch and where the output belongs.
type Request struct {
	URL  string
	Dir  string
	Kind string // "video", "image" or "audio"; selects output candidates
}

// Fetcher runs yt-dlp with layered options and the operator's auth
// material. A single Fetcher serves all workers; it keeps no per-run
// state.
type Fetcher struct {
	auth       AuthMaterial
	production bool
}

func NewFetcher(auth AuthMaterial, production bool) *Fetcher {
	return &Fetcher{auth: auth, production: production}
}

// EnsureBinary installs a yt-dlp binary when none is present. Call once
// at startup, before any fetch runs.
func EnsureBinary(ctx context.Context) {
	ytdlp.MustInstall(ctx, nil)
}

// AuthTiers returns the ordered auth overlays for a platform using the
// fetcher's material. Cookie discovery runs fresh on every call, so a
// cookies.txt dropped in after boot is picked up here.
func (f *Fetcher) AuthTiers(platform string) []Options {
	return AuthTiers(platform, f.auth, f.production)
}

// FetchTiered runs Fetch once per auth tier, merging each tier over
// opts. Cancellation stops the ladder immediately; any other failure
// falls through to the next tier. Only the last error surfaces.
func (f *Fetcher) FetchTiered(ctx context.Context, req Request, opts Options, tiers []Options, hooks Hooks) (string, error) {
	if len(tiers) == 0 {
		tiers = []Options{{}}
	}
	var lastErr error
	for i, tier := range tiers {
		path, err := f.Fetch(ctx, req, Merge(opts, tier), hooks)
		if err == nil {
			return path, nil
		}
		if errors.Is(err, ErrCancelled) {
			return "", err
		}
		lastErr = err
		if i+1 < len(tiers) {
			log.Printf("Extraction tier %d/%d for %s failed, retrying with reduced auth: %v", i+1, len(tiers), req.URL, err)
			if hooks.OnStatus != nil {
				hooks.OnStatus("Retrying without browser cookies...")
			}
		}
	}
	return "", fmt.Errorf("extraction failed after %d tier(s): %w", len(tiers), lastErr)
}

// Fetch runs one yt-dlp invocation and returns the path of the produced
// file. The output template carries a per-job uuid stem so concurrent
// downloads of identically-titled media never collide on disk.
func (f *Fetcher) Fetch(ctx context.Context, req Request, opts Options, hooks Hooks) (string, error) {
	stem := uuid.New().String()
	template := opts.OutputTemplate
	if template == "" {
		template = filepath.Join(req.Dir, "%(title)s_"+stem+".%(ext)s")
	}
	if opts.MergeFormat == "" && req.Kind == "video" && HaveFFmpeg() {
		opts.MergeFormat = "mp4"
	}

	dl := buildCommand(opts)
	dl.Output(template)

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	var cancelled atomic.Bool
	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		if hooks.ShouldCancel != nil && hooks.ShouldCancel() {
			cancelled.Store(true)
			stop()
			return
		}
		if update.TotalBytes > 0 {
			pct := int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
			if pct < 0 {
				pct = 0
			} else if pct > 100 {
				pct = 100
			}
			if hooks.OnProgress != nil {
				hooks.OnProgress(pct)
			}
			if hooks.OnStatus != nil {
				hooks.OnStatus(fmt.Sprintf("Downloaded %.1fMB of %.1fMB (%d%%)",
					float64(update.DownloadedBytes)/1024/1024,
					float64(update.TotalBytes)/1024/1024, pct))
			}
		} else if hooks.OnProgress != nil {
			// No size information yet; report a sliver of progress so
			// the client can see the transfer is alive.
			hooks.OnProgress(1)
		}
	})

	if hooks.OnStatus != nil {
		hooks.OnStatus("Starting download...")
	}

	result, err := dl.Run(runCtx, req.URL)
	if cancelled.Load() || ctx.Err() != nil {
		return "", ErrCancelled
	}
	if err != nil {
		return "", fmt.Errorf("yt-dlp: %w", err)
	}

	if hooks.OnStatus != nil {
		hooks.OnStatus("Download finished, processing file...")
	}
	path := locateResult(result, req.Dir, stem, req.Kind)
	if path == "" {
		return "", errors.New("download finished but produced no usable output file")
	}
	return path, nil
}

func buildCommand(o Options) *ytdlp.Command {
	dl := ytdlp.New().
		ForceOverwrites().
		RestrictFilenames()

	if o.Format != "" {
		dl.Format(o.Format)
	}
	if o.NoPlaylist {
		dl.NoPlaylist()
	}
	if o.Retries > 0 {
		dl.Retries(strconv.Itoa(o.Retries))
	}
	if o.FragmentRetries > 0 {
		dl.FragmentRetries(strconv.Itoa(o.FragmentRetries))
	}
	if o.ExtractorRetries > 0 {
		dl.ExtractorRetries(strconv.Itoa(o.ExtractorRetries))
	}
	if o.FileAccessRetries > 0 {
		dl.FileAccessRetries(strconv.Itoa(o.FileAccessRetries))
	}
	if o.ConcurrentFragments > 0 {
		dl.ConcurrentFragments(o.ConcurrentFragments)
	}
	if o.SocketTimeoutSec > 0 {
		dl.SocketTimeout(float64(o.SocketTimeoutSec))
	}
	if o.UserAgent != "" {
		dl.UserAgent(o.UserAgent)
	}
	if o.CookieFile != "" {
		dl.Cookies(o.CookieFile)
	}
	if o.CookieBrowser != "" {
		dl.CookiesFromBrowser(o.CookieBrowser)
	}
	if o.Username != "" {
		dl.Username(o.Username)
	}
	if o.Password != "" {
		dl.Password(o.Password)
	}
	if o.GeoBypass {
		dl.GeoBypass()
	}
	if o.NoCheckCertificates {
		dl.NoCheckCertificates()
	}
	if o.MergeFormat != "" {
		dl.MergeOutputFormat(o.MergeFormat)
	}
	for _, args := range o.ExtractorArgs {
		dl.ExtractorArgs(args)
	}
	return dl
}

// locateResult resolves the finished file: the filename yt-dlp reported
// first, then a glob on the uuid stem for runs where the report is
// absent (some extractors only populate it for the merged output).
func locateResult(result *ytdlp.Result, dir, stem, kind string) string {
	if result != nil {
		if info, err := result.GetExtractedInfo(); err == nil {
			for _, item := range info {
				if item == nil || item.Filename == nil {
					continue
				}
				if path := media.LocateOutput(*item.Filename, kind); path != "" {
					return path
				}
			}
		}
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*"+stem+"*"))
	for _, m := range matches {
		if path := media.LocateOutput(m, kind); path != "" {
			return path
		}
	}
	return ""
}
