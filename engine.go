package frond

import (
	"time"

	"go.uber.org/zap"

	"github.com/frondlabs/frond/internal"
	"github.com/frondlabs/frond/renderers"
)

// Engine reconciles one independent tree. It is confined to a single
// goroutine; see Loop for how sliced execution cooperates with a host
// event loop.
type Engine struct {
	engine *internal.Engine
}

type config struct {
	loop  internal.Loop
	slice time.Duration
	log   *zap.Logger
}

type Option func(*config)

// WithLoop selects sliced execution driven by the given loop adapter.
// Without it the engine is synchronous: Render drains all work in one
// blocking call, ignoring deadlines.
func WithLoop(loop Loop) Option {
	return func(c *config) { c.loop = loop }
}

// WithTimeSlice overrides the advisory 16ms work-slice budget.
func WithTimeSlice(d time.Duration) Option {
	return func(c *config) { c.slice = d }
}

// WithLogger enables advisory logging of scheduling events.
func WithLogger(log *zap.Logger) Option {
	return func(c *config) { c.log = log }
}

// New creates an engine rendering through the given backend. A nil
// renderer falls back to an in-memory dict renderer.
func New(renderer Renderer, opts ...Option) *Engine {
	if renderer == nil {
		renderer = renderers.NewDict()
	}

	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return &Engine{
		engine: internal.NewEngine(renderer, c.loop, c.slice, c.log),
	}
}

// Render schedules a full pass rendering el into container. On a
// synchronous engine the pass (and its completion callback) finishes
// before Render returns, and the pass error is returned directly. On a
// sliced engine Render returns nil immediately and the terminal error of
// the pass reaches done.
//
// done stays registered: every later pass triggered by a prop mutation
// reports through it as well. It may be nil.
func (e *Engine) Render(el *VNode, container Node, done func(error)) error {
	return e.engine.Render(el, container, done)
}
