package sites

import (
	"errors"
	"fmt"
	"sort"

	"github.com/saveloop/saveloop/internal/models"
)

// ErrInvalidURL is returned by a strategy when the submitted URL does
// not belong to its platform.
var ErrInvalidURL = errors.New("url does not belong to this platform")

var registry = make(map[string]models.Strategy)

// Register adds a new strategy to the registry. It's called at startup.
func Register(s models.Strategy) {
	info := s.Info()
	if _, exists := registry[info.Tag]; exists {
		// Panic is appropriate here as it's a developer error during setup.
		panic(fmt.Sprintf("strategy with tag '%s' is already registered", info.Tag))
	}
	registry[info.Tag] = s
}

// Get returns a strategy by its platform tag.
func Get(tag string) (models.Strategy, bool) {
	s, ok := registry[tag]
	return s, ok
}

// All returns information for every registered strategy, sorted by
// display name so listings stay stable across restarts.
func All() []models.PlatformInfo {
	var infos []models.PlatformInfo
	for _, s := range registry {
		infos = append(infos, s.Info())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// UnregisterAll empties the registry so tests can swap the real
// strategies for scripted ones.
func UnregisterAll() {
	registry = make(map[string]models.Strategy)
}
