package internal

import (
	"time"

	"github.com/frondlabs/frond/reactive"
)

// yieldMargin is how close to the deadline the loop may start another unit.
const yieldMargin = time.Millisecond

// requestWork asks the engine to start (or continue) draining units. On a
// synchronous engine the work runs to exhaustion before returning; on a
// sliced engine a resumption is handed to the loop adapter.
func (e *Engine) requestWork() error {
	e.log.Debug("request work")
	e.scheduled = true

	if e.running {
		// the active loop re-reads nextUnit/wipRoot after its slice
		return nil
	}

	if e.loop == nil {
		return e.drain()
	}

	if !e.queued {
		e.queued = true
		e.loop.Schedule(e.resume)
	}
	return nil
}

// drain runs the synchronous mode: whole passes, no deadline, looping while
// triggers fired during the pass schedule more work.
func (e *Engine) drain() error {
	for {
		if err := e.workLoop(time.Time{}); err != nil {
			e.finish(err)
			return err
		}
		if e.scheduled {
			continue
		}
		e.finish(nil)
		return nil
	}
}

// resume is one sliced continuation, run by the loop adapter.
func (e *Engine) resume() {
	e.checkAffinity()
	e.queued = false

	if err := e.workLoop(time.Now().Add(e.slice)); err != nil {
		e.finish(err)
		return
	}

	if e.nextUnit != nil || e.scheduled {
		if !e.queued {
			e.queued = true
			e.loop.Schedule(e.resume)
		}
		return
	}

	e.finish(nil)
}

// workLoop performs units until the deadline is imminent or none remain,
// committing the finished tree. A zero deadline disables yielding. At least
// one unit is performed per call.
func (e *Engine) workLoop(deadline time.Time) error {
	e.scheduled = false
	e.running = true
	defer func() { e.running = false }()

	for e.nextUnit != nil {
		next, err := e.performUnit(e.nextUnit)
		if err != nil {
			// abandon the in-flight pass
			e.nextUnit = nil
			e.wipRoot = nil
			return err
		}

		if e.scheduled {
			// a mutation during this unit re-rooted the pass; keep the
			// trigger's cursor instead of the stale walk
			e.scheduled = false
		} else {
			e.nextUnit = next
		}

		if !deadline.IsZero() && time.Until(deadline) < yieldMargin {
			break
		}
	}

	if e.nextUnit == nil && e.wipRoot != nil {
		return e.commitRoot()
	}
	return nil
}

// performUnit executes exactly one unit of work and returns the next fiber
// in pre-order, or nil when the walk is exhausted.
func (e *Engine) performUnit(f *Fiber) (*Fiber, error) {
	var err error
	if f.kind == KindComponent {
		err = e.updateComponent(f)
	} else {
		err = e.updateHost(f)
	}
	if err != nil {
		return nil, err
	}

	return f.next(), nil
}

// updateComponent invokes the component with its props to obtain its single
// child descriptor. A panic inside the component aborts the pass.
func (e *Engine) updateComponent(f *Fiber) error {
	child, err := invoke(f.fn, f.props)
	if err != nil {
		return err
	}

	if child == nil {
		e.reconcileChildren(f, nil)
		return nil
	}
	e.reconcileChildren(f, []*VNode{child})
	return nil
}

func invoke(fn Component, props *reactive.Map) (el *VNode, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ComponentError{Recovered: r}
		}
	}()

	return fn(props), nil
}

// updateHost realizes the fiber's backend node if needed, then reconciles
// its child descriptors.
func (e *Engine) updateHost(f *Fiber) error {
	if f.node == nil {
		node, err := e.createNode(f)
		if err != nil {
			return err
		}
		f.node = node
	}

	e.reconcileChildren(f, f.elements)
	return nil
}

func (e *Engine) createNode(f *Fiber) (Node, error) {
	node, err := e.renderer.CreateNode(f.tag)
	if err != nil {
		return nil, &BackendError{Op: "create", Err: err}
	}

	if err := e.applyProps(node, nil, f.snapshot); err != nil {
		return nil, err
	}
	return node, nil
}
