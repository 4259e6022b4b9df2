package facebook_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/facebook"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mobile story keeps address params",
			in:   "https://m.facebook.com/story.php?story_fbid=10158693&id=53174&mibextid=qC1gEa",
			want: "https://www.facebook.com/story.php?id=53174&story_fbid=10158693",
		},
		{
			name: "watch keeps v param",
			in:   "https://www.facebook.com/watch/?v=1093831888680522&ref=sharing",
			want: "https://www.facebook.com/watch/?v=1093831888680522",
		},
		{
			name: "reel trackers stripped",
			in:   "https://www.facebook.com/reel/3847261904?mibextid=rS40aB",
			want: "https://www.facebook.com/reel/3847261904",
		},
		{
			name: "short link passes through",
			in:   "https://fb.watch/sX9yZ1AbCd/",
			want: "https://fb.watch/sX9yZ1AbCd/",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := facebook.Canonicalize(tc.in)
			if err != nil {
				t.Fatalf("Canonicalize(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonicalizeRejectsForeignURLs(t *testing.T) {
	for _, in := range []string{"https://twitter.com/user/status/1", ""} {
		if _, err := facebook.Canonicalize(in); !errors.Is(err, sites.ErrInvalidURL) {
			t.Errorf("Canonicalize(%q) error = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestTitle(t *testing.T) {
	t.Run("Scrapes og:title", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><head>` +
				`<meta property="og:title" content="Cat falls off sofa | By Funny Pets" />` +
				`</head><body></body></html>`))
		}))
		defer srv.Close()

		got := facebook.New(nil).Title(context.Background(), srv.URL)
		if got != "Cat falls off sofa | By Funny Pets" {
			t.Errorf("Title() = %q, want scraped og:title", got)
		}
	})

	t.Run("Falls back when meta missing", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><head><title>ignored</title></head></html>`))
		}))
		defer srv.Close()

		if got := facebook.New(nil).Title(context.Background(), srv.URL); got != "Facebook Video" {
			t.Errorf("Title() = %q, want fallback", got)
		}
	})

	t.Run("Falls back on HTTP error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer srv.Close()

		if got := facebook.New(nil).Title(context.Background(), srv.URL); got != "Facebook Video" {
			t.Errorf("Title() = %q, want fallback", got)
		}
	})

	t.Run("Sends browser user agent", func(t *testing.T) {
		var ua string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		facebook.New(nil).Title(context.Background(), srv.URL)
		if ua == "" || ua == "Go-http-client/1.1" {
			t.Errorf("Expected a browser user agent, got %q", ua)
		}
	})
}
