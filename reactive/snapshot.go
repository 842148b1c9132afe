package reactive

import "sort"

// Snapshot is an immutable ordered copy of a Map's entries, taken at a
// point in time. The reconciliation engine diffs two snapshots to compute
// the property delta between commits.
type Snapshot struct {
	keys   []string
	values map[string]any
}

var emptySnapshot = &Snapshot{}

// EmptySnapshot returns a shared snapshot with no entries.
func EmptySnapshot() *Snapshot {
	return emptySnapshot
}

// Snapshot copies the map's current entries. A nil map snapshots empty.
func (m *Map) Snapshot() *Snapshot {
	if m == nil || len(m.keys) == 0 {
		return emptySnapshot
	}

	s := &Snapshot{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(s.keys, m.keys)
	for k, v := range m.values {
		s.values[k] = v
	}

	return s
}

func (s *Snapshot) Get(key string) (any, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The caller must not mutate the
// returned slice.
func (s *Snapshot) Keys() []string {
	return s.keys
}

func (s *Snapshot) Len() int {
	return len(s.keys)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
