package linkedin_test

import (
	"errors"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites"
	"github.com/saveloop/saveloop/internal/downloader/sites/linkedin"
)

func TestCanonicalize(t *testing.T) {
	in := "https://www.linkedin.com/posts/satyanadella_quantum-activity-7172334567890-Ab3d?utm_source=share&utm_medium=member_desktop"
	want := "https://www.linkedin.com/posts/satyanadella_quantum-activity-7172334567890-Ab3d"
	got, err := linkedin.Canonicalize(in)
	if err != nil {
		t.Fatalf("Canonicalize(%q) returned error: %v", in, err)
	}
	if got != want {
		t.Errorf("Canonicalize(%q) = %q, want %q", in, got, want)
	}
}

func TestCanonicalizeRejectsForeignURLs(t *testing.T) {
	for _, in := range []string{"https://www.tiktok.com/@u/video/1", ""} {
		if _, err := linkedin.Canonicalize(in); !errors.Is(err, sites.ErrInvalidURL) {
			t.Errorf("Canonicalize(%q) error = %v, want ErrInvalidURL", in, err)
		}
	}
}

func TestInfo(t *testing.T) {
	info := linkedin.New(nil).Info()
	if info.Tag != "linkedin" || info.Name != "LinkedIn" {
		t.Errorf("Unexpected info: %+v", info)
	}
}
