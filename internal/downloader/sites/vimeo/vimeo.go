// Package vimeo implements the Vimeo strategy, the simplest of the
// set: numeric video URLs, no auth walls worth speaking of, a single
// tier.
package vimeo

import (
	"context"
	"net/url"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

type VimeoStrategy struct {
	fetcher *extract.Fetcher
}

func New(f *extract.Fetcher) *VimeoStrategy {
	return &VimeoStrategy{fetcher: f}
}

func (s *VimeoStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.Vimeo),
		Name: platform.Name(platform.Vimeo),
	}
}

// Canonicalize validates the host and strips query params. Unlisted
// video hashes live in the path, so they survive the strip.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.Vimeo {
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

func (s *VimeoStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
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
		s.fetcher.AuthTiers(string(platform.Vimeo)),
		req.Hooks)
}
