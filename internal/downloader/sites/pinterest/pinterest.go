// Package pinterest implements the Pinterest strategy. Pins are mostly
// images but can hold video, and the extractor copes unevenly with the
// variety, so a download tries an image-biased pass first and falls
// back to a fully generic one before giving up.
package pinterest

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

type PinterestStrategy struct {
	fetcher *extract.Fetcher
}

func New(f *extract.Fetcher) *PinterestStrategy {
	return &PinterestStrategy{fetcher: f}
}

func (s *PinterestStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.Pinterest),
		Name: platform.Name(platform.Pinterest),
	}
}

// Canonicalize validates the host and strips query params. pin.it
// short links pass through and redirect on Pinterest's side.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.Pinterest {
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

func (s *PinterestStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	target, err := Canonicalize(req.URL)
	if err != nil {
		return "", err
	}
	request := extract.Request{URL: target, Dir: req.Dir, Kind: string(req.Kind)}
	tiers := s.fetcher.AuthTiers(string(platform.Pinterest))

	if req.Hooks.OnStatus != nil {
		req.Hooks.OnStatus("Downloading image from Pinterest...")
	}
	path, err := s.fetcher.FetchTiered(ctx, request,
		s.options(req, extract.FormatFor("image", req.Quality, extract.HaveFFmpeg())),
		tiers, req.Hooks)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, extract.ErrCancelled) {
		return "", err
	}

	if req.Hooks.OnStatus != nil {
		req.Hooks.OnStatus("Trying generic extraction...")
	}
	path, err = s.fetcher.FetchTiered(ctx, request, s.options(req, "best"), tiers, req.Hooks)
	if err == nil {
		return path, nil
	}
	if errors.Is(err, extract.ErrCancelled) {
		return "", err
	}
	// The wrapped message keeps the most common cause visible: pins
	// that need a signed-in browser session.
	return "", fmt.Errorf("pinterest: pin may be private or require login: %w", err)
}

func (s *PinterestStrategy) options(req models.DownloadRequest, format string) extract.Options {
	layers := []extract.Options{extract.Baseline(), {Format: format}}
	if req.Extra != nil {
		layers = append(layers, *req.Extra)
	}
	return extract.Merge(layers...)
}
