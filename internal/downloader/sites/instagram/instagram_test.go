package instagram_test

import (
	"errors"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/instagram"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "post with share tracker",
			in:   "https://www.instagram.com/p/C8xYz12AbCd/?igsh=MWx5cXo2bnQ4dg==",
			want: "https://www.instagram.com/p/C8xYz12AbCd/",
		},
		{
			name: "reel",
			in:   "https://www.instagram.com/reel/C9aBcDeFgHi/",
			want: "https://www.instagram.com/reel/C9aBcDeFgHi/",
		},
		{
			name: "reels share link folds to reel",
			in:   "https://www.instagram.com/reels/C9aBcDeFgHi/?utm_source=ig_web_copy_link",
			want: "https://www.instagram.com/reel/C9aBcDeFgHi/",
		},
		{
			name: "tv",
			in:   "https://www.instagram.com/tv/CZqLmnOpQrS/",
			want: "https://www.instagram.com/tv/CZqLmnOpQrS/",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := instagram.Canonicalize(tc.in)
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
	for _, in := range []string{"https://www.youtube.com/watch?v=abc", "", "instagram"} {
		if _, err := instagram.Canonicalize(in); !errors.Is(err, sites.ErrInvalidURL) {
			t.Errorf("Canonicalize(%q) error = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestInfo(t *testing.T) {
	info := instagram.New(nil).Info()
	if info.Tag != "instagram" || info.Name != "Instagram" {
		t.Errorf("Unexpected info: %+v", info)
	}
}
