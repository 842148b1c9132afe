package reactive

import (
	"sync"

	"github.com/petermattis/goid"
)

// Maps are confined to a single goroutine, so batching state is looked up
// by goroutine id rather than passed around.
var batchers sync.Map

type batcher struct {
	// each nested batch increases the depth by 1
	// if depth > 0, notifications are queued until the outermost batch completes
	depth int

	queue  []*Watcher
	queued map[*Watcher]struct{}
}

func currentBatcher() *batcher {
	gid := goid.Get()

	if b, ok := batchers.Load(gid); ok {
		return b.(*batcher)
	}

	b := &batcher{queued: make(map[*Watcher]struct{})}
	batchers.Store(gid, b)
	return b
}

// Batch coalesces all notifications caused by fn into a single delivery per
// watcher, fired when the outermost batch completes.
func Batch(fn func()) {
	b := currentBatcher()

	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 {
			b.flush()
		}
	}()

	fn()
}

func (b *batcher) flush() {
	for len(b.queue) > 0 {
		queue := b.queue
		b.queue = nil

		for _, w := range queue {
			delete(b.queued, w)
			if !w.released {
				w.fn()
			}
		}
	}
}

func deliver(w *Watcher) {
	b := currentBatcher()

	if b.depth == 0 {
		w.fn()
		return
	}

	if _, ok := b.queued[w]; ok {
		return
	}
	b.queued[w] = struct{}{}
	b.queue = append(b.queue, w)
}
