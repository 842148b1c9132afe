// Package reactive provides observable, insertion-ordered property maps.
//
// A Map notifies its watchers whenever one of its entries actually changes.
// Nested maps bubble: mutating a *Map stored as a value notifies the
// watchers of every enclosing map, so a single deep watch on a root map
// observes the whole structure.
package reactive

type Map struct {
	keys   []string
	values map[string]any

	watchers []*Watcher

	// propagation subscriptions on nested child maps, keyed by prop name
	links map[string]*Watcher
}

func NewMap() *Map {
	return &Map{
		values: make(map[string]any),
		links:  make(map[string]*Watcher),
	}
}

// FromMap copies src into a new Map. Keys are inserted in sorted order so
// that maps built from Go map literals iterate deterministically. Nested
// map[string]any values are converted recursively.
func FromMap(src map[string]any) *Map {
	m := NewMap()

	for _, key := range sortedKeys(src) {
		switch v := src[key].(type) {
		case map[string]any:
			m.Set(key, FromMap(v))
		default:
			m.Set(key, v)
		}
	}

	return m
}

// Set stores value under key, notifying watchers. Writing a value equal to
// the current one is a no-op.
func (m *Map) Set(key string, value any) {
	old, exists := m.values[key]
	if exists && isEqual(old, value) {
		return
	}

	// replacing a nested map retires its propagation link
	if link, ok := m.links[key]; ok {
		link.Release()
		delete(m.links, key)
	}
	if child, ok := value.(*Map); ok {
		m.links[key] = Watch(child, m.notify)
	}

	if !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value

	m.notify()
}

// Delete removes key, notifying watchers. Deleting an absent key is a no-op.
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}

	if link, ok := m.links[key]; ok {
		link.Release()
		delete(m.links, key)
	}

	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}

	m.notify()
}

func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Map) notify() {
	// watchers may release themselves while being notified
	watchers := make([]*Watcher, len(m.watchers))
	copy(watchers, m.watchers)

	for _, w := range watchers {
		if !w.released {
			deliver(w)
		}
	}
}

func isEqual(a, b any) (eq bool) {
	// == panics on funcs, maps and slices; treat those as always changed
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()

	return a == b
}
