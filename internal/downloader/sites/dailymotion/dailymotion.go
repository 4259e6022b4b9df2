// Package dailymotion implements the Dailymotion strategy. Both the
// full video URLs and dai.ly short links are accepted; the short form
// redirects on Dailymotion's side.
package dailymotion

import (
	"context"
	"net/url"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

type DailymotionStrategy struct {
	fetcher *extract.Fetcher
}

func New(f *extract.Fetcher) *DailymotionStrategy {
	return &DailymotionStrategy{fetcher: f}
}

func (s *DailymotionStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.Dailymotion),
		Name: platform.Name(platform.Dailymotion),
	}
}

// Canonicalize validates the host and strips query params.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.Dailymotion {
		return "", sites.ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", sites.ErrInvalidURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

func (s *DailymotionStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
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
		s.fetcher.AuthTiers(string(platform.Dailymotion)),
		req.Hooks)
}
