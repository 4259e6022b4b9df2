package dailymotion_test

import (
	"errors"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/dailymotion"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "video with playlist param",
			in:   "https://www.dailymotion.com/video/x8k2jrs?playlist=x5v8pj",
			want: "https://www.dailymotion.com/video/x8k2jrs",
		},
		{
			name: "short link passes through",
			in:   "https://dai.ly/x8k2jrs",
			want: "https://dai.ly/x8k2jrs",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dailymotion.Canonicalize(tc.in)
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
	for _, in := range []string{"https://vimeo.com/76979871", ""} {
		if _, err := dailymotion.Canonicalize(in); !errors.Is(err, sites.ErrInvalidURL) {
			t.Errorf("Canonicalize(%q) error = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestInfo(t *testing.T) {
	info := dailymotion.New(nil).Info()
	if info.Tag != "dailymotion" || info.Name != "Dailymotion" {
		t.Errorf("Unexpected info: %+v", info)
	}
}
