// Package tiktok implements the TikTok strategy. Share links arrive
// stuffed with tracking params that sometimes confuse the extractor,
// so canonicalization strips the query wholesale; vm.tiktok.com short
// links pass through and redirect on TikTok's side.
package tiktok

import (
	"context"
	"net/url"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

type TikTokStrategy struct {
	fetcher *extract.Fetcher
}

func New(f *extract.Fetcher) *TikTokStrategy {
	return &TikTokStrategy{fetcher: f}
}

func (s *TikTokStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.TikTok),
		Name: platform.Name(platform.TikTok),
	}
}

// Canonicalize validates the host and strips query params.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.TikTok {
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

func (s *TikTokStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
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
		s.fetcher.AuthTiers(string(platform.TikTok)),
		req.Hooks)
}
