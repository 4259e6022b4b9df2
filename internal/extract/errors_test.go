package extract_test

import (
	"errors"
	"testing"

	"github.com/saveloop/saveloop/internal/extract"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			"age gate",
			"ERROR: Sign in to confirm your age. This video may be inappropriate for some users.",
			"This content is age-restricted and cannot be downloaded.",
		},
		{
			"private video",
			"ERROR: Private video. Sign in if you've been granted access to this video",
			"This content is private or requires an account to view.",
		},
		{
			"removed",
			"ERROR: Video unavailable. This video has been removed by the uploader",
			"This content is unavailable. It may have been removed.",
		},
		{
			"geo blocked",
			"ERROR: The uploader has not made this video available in your country",
			"This content is not available in this region.",
		},
		{
			"disk full",
			"write /downloads/clip.mp4: no space left on device",
			"Server storage is full. Please try again later.",
		},
		{
			"connection reset",
			"read tcp 10.0.0.2:443: connection reset by peer",
			"Network problem while downloading. Please try again.",
		},
		{
			"throttled",
			"ERROR: unable to download video data: HTTP Error 429: Too Many Requests",
			"Network problem while downloading. Please try again.",
		},
		{
			"unsupported url",
			"ERROR: Unsupported URL: https://example.com/watch",
			"This URL is not supported.",
		},
		{
			"anything else",
			"exit status 1",
			"Download failed. Please check the URL and try again.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extract.Normalize(errors.New(tc.raw)); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}

	if got := extract.Normalize(nil); got != "" {
		t.Errorf("Normalize(nil) should be empty, got %q", got)
	}
}
