package sites

import (
	"context"
	"testing"

	"github.com/saveloop/saveloop/internal/downloader/sites/mocktube"
	"github.com/saveloop/saveloop/internal/models"
)

// stubStrategy lets tests register extra entries without pulling in a
// real platform package.
type stubStrategy struct {
	tag  string
	name string
}

func (s stubStrategy) Info() models.PlatformInfo {
	return models.PlatformInfo{Tag: s.tag, Name: s.name}
}

func (s stubStrategy) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	return "", nil
}

func TestStrategyRegistry(t *testing.T) {
	UnregisterAll()
	t.Cleanup(UnregisterAll)
	Register(mocktube.New())

	t.Run("Get All Strategies", func(t *testing.T) {
		all := All()
		if len(all) != 1 {
			t.Fatalf("Expected 1 strategy, got %d", len(all))
		}
		if all[0].Tag != "mocktube" {
			t.Errorf("Expected strategy tag 'mocktube', got '%s'", all[0].Tag)
		}
	})

	t.Run("Get Existing Strategy", func(t *testing.T) {
		s, ok := Get("mocktube")
		if !ok {
			t.Fatal("Expected to find strategy 'mocktube', but it was not found")
		}
		if s.Info().Name != "Mocktube" {
			t.Errorf("Expected strategy name 'Mocktube', got '%s'", s.Info().Name)
		}
	})

	t.Run("Get Non-existent Strategy", func(t *testing.T) {
		_, ok := Get("nonexistent")
		if ok {
			t.Fatal("Expected not to find strategy 'nonexistent', but it was found")
		}
	})

	t.Run("All Sorted By Name", func(t *testing.T) {
		Register(stubStrategy{tag: "zeta", name: "Zeta"})
		Register(stubStrategy{tag: "alpha", name: "Alpha"})
		all := All()
		if len(all) != 3 {
			t.Fatalf("Expected 3 strategies, got %d", len(all))
		}
		if all[0].Name != "Alpha" || all[2].Name != "Zeta" {
			t.Errorf("Expected strategies sorted by name, got %+v", all)
		}
	})

	t.Run("Panic on Duplicate Registration", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected registration of a duplicate strategy to panic, but it did not")
			}
		}()
		// This should cause a panic
		Register(mocktube.New())
	})
}
