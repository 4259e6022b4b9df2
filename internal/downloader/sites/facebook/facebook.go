// Package facebook implements the Facebook strategy. Before handing a
// URL to the extractor it scrapes the page's og:title so the status
// stream can say what is being fetched; Facebook's markup is too
// volatile for anything more ambitious than that one meta tag.
package facebook

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/extract"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/platform"
)

const fallbackTitle = "Facebook Video"

type FacebookStrategy struct {
	fetcher *extract.Fetcher
	client  *http.Client
}

func New(f *extract.Fetcher) *FacebookStrategy {
	return &FacebookStrategy{
		fetcher: f,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *FacebookStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{
		Tag:  string(platform.Facebook),
		Name: platform.Name(platform.Facebook),
	}
}

// Params that address content rather than track shares. watch and
// story.php links are nothing but their params, so a blanket query
// strip would break them.
var addressParams = []string{"v", "story_fbid", "id"}

// Canonicalize rewrites mobile links to the desktop host and drops
// every query param except the ones that address the video itself.
// fb.watch short links pass through and redirect on Facebook's side.
func Canonicalize(raw string) (string, error) {
	if tag, ok := platform.Identify(raw); !ok || tag != platform.Facebook {
		return "", sites.ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", sites.ErrInvalidURL
	}
	q := u.Query()
	kept := url.Values{}
	for _, k := range addressParams {
		if vals, ok := q[k]; ok {
			kept[k] = vals
		}
	}
	u.RawQuery = kept.Encode()
	u.Fragment = ""
	host := strings.ToLower(u.Host)
	if host == "m.facebook.com" || host == "mbasic.facebook.com" {
		u.Host = "www.facebook.com"
	}
	return u.String(), nil
}

// Title fetches the page and pulls og:title. Best effort: any failure
// falls back to a generic label rather than failing the download.
func (s *FacebookStrategy) Title(ctx context.Context, pageURL string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return fallbackTitle
	}
	req.Header.Set("User-Agent", extract.ChromeUserAgent)
	resp, err := s.client.Do(req)
	if err != nil {
		return fallbackTitle
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallbackTitle
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fallbackTitle
	}
	if title, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && title != "" {
		return title
	}
	return fallbackTitle
}

func (s *FacebookStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	target, err := Canonicalize(req.URL)
	if err != nil {
		return "", err
	}
	if req.Hooks.OnStatus != nil {
		req.Hooks.OnStatus("Fetching video information...")
	}
	title := s.Title(ctx, target)
	log.Printf("Facebook download: %s (%s)", title, target)
	if req.Hooks.OnStatus != nil {
		req.Hooks.OnStatus(fmt.Sprintf("Downloading %s", title))
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
		s.fetcher.AuthTiers(string(platform.Facebook)),
		req.Hooks)
}
