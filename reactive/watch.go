package reactive

// Watcher is a live subscription to a Map's mutations.
type Watcher struct {
	m        *Map
	fn       func()
	released bool
}

// Watch subscribes fn to every change of m, including changes to nested
// maps. The returned Watcher must be released by whoever owns it.
func Watch(m *Map, fn func()) *Watcher {
	w := &Watcher{m: m, fn: fn}
	m.watchers = append(m.watchers, w)
	return w
}

// Release detaches the watcher. Releasing twice (or releasing nil) is a
// no-op.
func (w *Watcher) Release() {
	if w == nil || w.released {
		return
	}
	w.released = true

	for i, other := range w.m.watchers {
		if other == w {
			w.m.watchers = append(w.m.watchers[:i], w.m.watchers[i+1:]...)
			break
		}
	}
}
