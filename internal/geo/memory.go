package geo

import (
	"context"
	"sort"
)

// MemoryLocator ranks a fixed set of agency coordinates by haversine
// distance. It is the default backend; the redis backend exists for
// deployments sharing one agency index across processes.
type MemoryLocator struct {
	entries []memoryEntry
}

type memoryEntry struct {
	id  string
	loc Location
}

func NewMemoryLocator() *MemoryLocator {
	return &MemoryLocator{}
}

// Add registers an agency's location. Agencies without coordinates should
// not be added; they can never match a radius search.
func (l *MemoryLocator) Add(agencyID string, loc Location) {
	l.entries = append(l.entries, memoryEntry{id: agencyID, loc: loc})
}

func (l *MemoryLocator) FindNearby(ctx context.Context, origin Location, radiusMiles float64, limit int) ([]Nearby, error) {
	var hits []Nearby
	for _, e := range l.entries {
		d := HaversineMiles(origin, e.loc)
		if d <= radiusMiles {
			hits = append(hits, Nearby{AgencyID: e.id, DistanceMiles: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].DistanceMiles != hits[j].DistanceMiles {
			return hits[i].DistanceMiles < hits[j].DistanceMiles
		}
		return hits[i].AgencyID < hits[j].AgencyID
	})
	if limit > 0 && len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}
