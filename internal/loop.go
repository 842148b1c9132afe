package internal

import (
	"context"
	"sync"
)

// Loop schedules resumptions of the engine's work loop. The engine never
// registers host callbacks itself: it hands each continuation to the loop
// adapter and the adapter decides when it runs. Tasks must execute on the
// goroutine that owns the engine.
type Loop interface {
	Schedule(task func())
}

// RunLoop is a caller-driven task queue: the host drains it on the
// engine's goroutine via Run or Tick. Schedule is safe to call from any
// goroutine, so external event sources may post work.
//
// The queue is unbounded; a buffered size-1 channel signals availability
// so Run can wait without polling.
type RunLoop struct {
	mu     sync.Mutex
	tasks  []func()
	signal chan struct{}
}

func NewRunLoop() *RunLoop {
	return &RunLoop{
		signal: make(chan struct{}, 1),
	}
}

func (l *RunLoop) Schedule(task func()) {
	l.mu.Lock()
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()

	select {
	case l.signal <- struct{}{}:
	default:
	}
}

// Tick runs the tasks queued at the time of the call and returns how many
// ran. Tasks scheduled by those tasks wait for the next tick.
func (l *RunLoop) Tick() int {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// Run drains tasks until ctx is done.
func (l *RunLoop) Run(ctx context.Context) error {
	for {
		l.Tick()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.signal:
		}
	}
}

// timerLoop adapts a GUI toolkit's zero-delay single-shot timer primitive.
type timerLoop struct {
	singleShot func(fn func())
}

// NewTimerLoop wraps a toolkit primitive that runs fn once on the toolkit's
// event loop with zero delay.
func NewTimerLoop(singleShot func(fn func())) Loop {
	return &timerLoop{singleShot: singleShot}
}

func (t *timerLoop) Schedule(task func()) {
	t.singleShot(task)
}
