package internal

import (
	"fmt"
	"time"

	"github.com/petermattis/goid"
	"go.uber.org/zap"
)

// DefaultTimeSlice is the advisory budget of one work-loop slice.
const DefaultTimeSlice = 16 * time.Millisecond

// Engine holds all reconciliation state for one independent tree: the
// current (committed) root, the work-in-progress root, the walk cursor and
// the deletions list. Multiple engines can coexist in one process.
//
// An engine is confined to a single goroutine. The goroutine id is bound on
// first use and later entry from another goroutine panics.
type Engine struct {
	renderer Renderer
	loop     Loop // nil means synchronous
	slice    time.Duration
	log      *zap.Logger

	gid int64

	currentRoot *Fiber
	wipRoot     *Fiber
	nextUnit    *Fiber
	deletions   []*Fiber

	done func(error)

	// re-entrancy flags: a trigger landing while the loop is running only
	// marks it dirty, and the loop re-reads engine state afterwards
	scheduled bool
	running   bool
	queued    bool
}

func NewEngine(renderer Renderer, loop Loop, slice time.Duration, log *zap.Logger) *Engine {
	if slice <= 0 {
		slice = DefaultTimeSlice
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{
		renderer: renderer,
		loop:     loop,
		slice:    slice,
		log:      log,
	}
}

// Render schedules a full pass rendering el into container. container must
// be a node previously realized by (or otherwise known to) the renderer.
//
// A synchronous engine completes the pass before returning and returns its
// error; a sliced engine returns nil immediately and delivers the terminal
// error of the pass to done. done also fires (with nil) after every later
// pass triggered by a prop mutation.
func (e *Engine) Render(el *VNode, container Node, done func(error)) error {
	e.checkAffinity()

	e.wipRoot = &Fiber{
		kind:      KindHost,
		node:      container,
		elements:  []*VNode{el},
		alternate: e.currentRoot,
	}
	e.deletions = e.deletions[:0]
	e.nextUnit = e.wipRoot
	e.done = done

	return e.requestWork()
}

// stateUpdated is the render trigger: a committed fiber's watched props
// mutated, so a fresh work-in-progress pass is scheduled from the root.
// If a previous pass is still draining it is abandoned in place
// (last-write-wins); the loop always re-reads nextUnit.
func (e *Engine) stateUpdated(f *Fiber) {
	e.checkAffinity()
	e.log.Debug("state update", zap.String("type", f.typeName()))

	if e.currentRoot == nil {
		// a mutation during the very first pass; the in-flight pass
		// already reads the mutated props
		return
	}

	// the triggering watch is released here and resubscribed during
	// reconciliation of the new pass
	f.watch.Release()
	f.watch = nil

	wip := e.currentRoot.alternate
	if wip == nil {
		wip = &Fiber{}
	}
	wip.kind = e.currentRoot.kind
	wip.tag = e.currentRoot.tag
	wip.fn = e.currentRoot.fn
	wip.node = e.currentRoot.node
	wip.props = e.currentRoot.props
	wip.elements = e.currentRoot.elements
	wip.alternate = e.currentRoot
	wip.child = nil
	wip.sibling = nil
	wip.effect = EffectNone

	e.wipRoot = wip
	e.nextUnit = wip
	e.deletions = e.deletions[:0]

	// the pass error (if any) reaches the completion callback; there is
	// no caller to return it to from a mutation notification
	_ = e.requestWork()
}

// finish ends a pass, delivering err to the completion callback. The
// callback stays registered: later triggered passes report through it too.
func (e *Engine) finish(err error) {
	if e.done != nil {
		e.done(err)
	}
}

func (e *Engine) checkAffinity() {
	gid := goid.Get()

	if e.gid == 0 {
		e.gid = gid
		return
	}
	if e.gid != gid {
		panic(fmt.Sprintf("frond: engine owned by goroutine %d used from goroutine %d", e.gid, gid))
	}
}
