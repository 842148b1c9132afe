package internal

import "github.com/frondlabs/frond/reactive"

// reconcileChildren diffs wip's previous child chain (through its
// alternate) against the new descriptor list, in positional lockstep, and
// relinks wip.child into a fresh sibling chain of effect-tagged fibers.
// Fibers that must disappear are appended to the engine's deletions list.
func (e *Engine) reconcileChildren(wip *Fiber, elements []*VNode) {
	var old *Fiber
	if wip.alternate != nil {
		old = wip.alternate.child
	}

	// a realized fiber watches its own props (deeply) so that a later
	// mutation re-enters the engine at the render trigger
	if wip.node != nil && wip.props.Len() > 0 && wip.watch == nil {
		fiber := wip
		fiber.watch = reactive.Watch(fiber.props, func() {
			e.stateUpdated(fiber)
		})
	}

	index := 0
	var prev *Fiber

	for index < len(elements) || old != nil {
		var el *VNode
		if index < len(elements) {
			el = elements[index]
		}
		var fiber *Fiber

		same := old != nil && el != nil && sameType(old, el)

		if same {
			// reuse the fiber from two passes ago for this position
			fiber = old.alternate
			if fiber == nil {
				fiber = &Fiber{}
			}
			configure(fiber, el, wip)
			fiber.node = old.node
			fiber.alternate = old
			fiber.effect = EffectUpdate
		}
		if el != nil && !same {
			fiber = nil
			if old != nil {
				fiber = old.alternate
			}
			if fiber == nil {
				fiber = &Fiber{}
			}
			configure(fiber, el, wip)
			fiber.node = nil
			fiber.alternate = nil
			fiber.effect = EffectPlacement
		}
		if old != nil {
			// ownership of the mutation subscription moves to the new
			// fiber, which resubscribes when it is performed
			old.watch.Release()
			old.watch = nil

			if !same {
				old.effect = EffectDeletion
				e.deletions = append(e.deletions, old)
			}
		}

		if old != nil {
			old = old.sibling
		}

		if index == 0 {
			wip.child = fiber
		} else if el != nil {
			prev.sibling = fiber
		}

		prev = fiber
		index++
	}
}

// configure resets a (possibly recycled) fiber to describe el under parent.
func configure(f *Fiber, el *VNode, parent *Fiber) {
	f.kind = el.Kind
	f.tag = el.Tag
	f.fn = el.Fn
	f.props = el.Props
	f.snapshot = el.Props.Snapshot()
	f.elements = el.Children
	f.parent = parent
	f.child = nil
	f.sibling = nil
	f.key = el.Key

	f.watch.Release()
	f.watch = nil
}
