// Package instagram implements the Instagram strategy. Posts mix
// videos and images behind the same /p/ URLs, so format selection
// leans on the requested content kind rather than the URL shape, and
// sign-in walls are common enough that downloads walk the full auth
// tier ladder.
package instagram

import (
	"context"
	"net/url"
	"strings"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

type InstagramStrategy struct {
	fetcher *extract.Fetcher
}

func New(f *extract.Fetcher) *InstagramStrategy {
	return &InstagramStrategy{fetcher: f}
}

func (s *InstagramStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.Instagram),
		Name: platform.Name(platform.Instagram),
	}
}

// Canonicalize validates the host and strips the share trackers (igsh
// and friends) Instagram appends to copied links. Reel share links
// under /reels/ fold onto the /reel/ form the extractor prefers.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.Instagram {
		return "", sites.ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", sites.ErrInvalidURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	if strings.HasPrefix(u.Path, "/reels/") {
		u.Path = "/reel/" + strings.TrimPrefix(u.Path, "/reels/")
	}
	return u.String(), nil
}

func (s *InstagramStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	target, err := Canonicalize(req.URL)
	if err != nil {
		return "", err
	}
	defaults := extract.Options{
		Format: extract.FormatFor(string(req.Kind), req.Quality, extract.HaveFFmpeg()),
	}
	layers := []extract.Options{extract.Baseline(), defaults}
	if req.Extra != nil {
		layers = append(layers, *req.Extra)
	}
	return s.fetcher.FetchTiered(ctx,
		extract.Request{URL: target, Dir: req.Dir, Kind: string(req.Kind)},
		extract.Merge(layers...),
		s.fetcher.AuthTiers(string(platform.Instagram)),
		req.Hooks)
}
