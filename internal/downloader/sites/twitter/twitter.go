// Package twitter implements the Twitter strategy. Post URLs have
// lived on two hosts since the X rebrand; both are accepted and folded
// onto twitter.com, the form the extractor has handled for years.
package twitter

import (
	"context"
	"net/url"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

type TwitterStrategy struct {
	fetcher *extract.Fetcher
}

func New(f *extract.Fetcher) *TwitterStrategy {
	return &TwitterStrategy{fetcher: f}
}

func (s *TwitterStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.Twitter),
		Name: platform.Name(platform.Twitter),
	}
}

// Canonicalize folds every accepted host (x.com, mobile variants,
// www) onto bare twitter.com and strips the s= share trackers.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.Twitter {
		return "", sites.ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", sites.ErrInvalidURL
	}
	u.RawQuery = ""
	u.Fragment = ""
	u.Host = "twitter.com"
	return u.String(), nil
}

func (s *TwitterStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
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
		s.fetcher.AuthTiers(string(platform.Twitter)),
		req.Hooks)
}
