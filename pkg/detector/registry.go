package detector

import (
	"sort"

	"textlens/pkg/detector/detectors"
)

// registry holds every detector sorted by ascending priority. It is
// built once at init and never mutated afterwards.
var registry = buildRegistry()

func buildRegistry() []detectors.Detector {
	all := detectors.All()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Priority() < all[j].Priority()
	})
	return all
}

// Registered returns the detectors in evaluation order. The slice is a
// copy; callers can reorder it freely.
func Registered() []detectors.Detector {
	out := make([]detectors.Detector, len(registry))
	copy(out, registry)
	return out
}

// Find returns the detector with the given ID.
func Find(id string) (detectors.Detector, bool) {
	for _, d := range registry {
		if d.ID() == id {
			return d, true
		}
	}
	return nil, false
}
