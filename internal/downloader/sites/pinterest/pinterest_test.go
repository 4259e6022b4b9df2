package pinterest_test

import (
	"errors"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/pinterest"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "pin with trackers",
			in:   "https://www.pinterest.com/pin/70437485966221/?mt=login",
			want: "https://www.pinterest.com/pin/70437485966221/",
		},
		{
			name: "regional host",
			in:   "https://in.pinterest.com/pin/70437485966221/",
			want: "https://in.pinterest.com/pin/70437485966221/",
		},
		{
			name: "short link passes through",
			in:   "https://pin.it/3K8d9XyZn",
			want: "https://pin.it/3K8d9XyZn",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pinterest.Canonicalize(tc.in)
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
	for _, in := range []string{"https://www.instagram.com/p/abc/", ""} {
		if _, err := pinterest.Canonicalize(in); !errors.Is(err, sites.ErrInvalidURL) {
			t.Errorf("Canonicalize(%q) error = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestInfo(t *testing.T) {
	info := pinterest.New(nil).Info()
	if info.Tag != "pinterest" || info.Name != "Pinterest" {
		t.Errorf("Unexpected info: %+v", info)
	}
}
