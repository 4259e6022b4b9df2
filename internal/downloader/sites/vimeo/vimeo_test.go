package vimeo_test

import (
	"errors"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/vimeo"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "video with share param",
			in:   "https://vimeo.com/76979871?share=copy",
			want: "https://vimeo.com/76979871",
		},
		{
			name: "unlisted hash survives",
			in:   "https://vimeo.com/76979871/f1a2b3c4d5",
			want: "https://vimeo.com/76979871/f1a2b3c4d5",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vimeo.Canonicalize(tc.in)
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
	for _, in := range []string{"https://www.dailymotion.com/video/x8k2jrs", ""} {
		if _, err := vimeo.Canonicalize(in); !errors.Is(err, sites.ErrInvalidURL) {
			t.Errorf("Canonicalize(%q) error = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestInfo(t *testing.T) {
	info := vimeo.New(nil).Info()
	if info.Tag != "vimeo" || info.Name != "Vimeo" {
		t.Errorf("Unexpected info: %+v", info)
	}
}
