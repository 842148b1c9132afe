package internal

import "github.com/frondlabs/frond/reactive"

// EffectTag is the mutation a fiber requires at commit time.
type EffectTag int

const (
	EffectNone EffectTag = iota
	EffectPlacement
	EffectUpdate
	EffectDeletion
)

// Fiber is the engine's mutable unit of work, one per tree position.
// Fibers form a tree through parent/child/sibling links and are paired
// across passes through the alternate back-reference: the fiber at the
// same position in the other tree (current vs work-in-progress).
type Fiber struct {
	kind Kind
	tag  string
	fn   Component

	// props is the live (reactive) property map; snapshot is the copy
	// taken when the fiber was reconciled, diffed against the previous
	// snapshot at commit time.
	props    *reactive.Map
	snapshot *reactive.Snapshot

	// elements are the child descriptors awaiting reconciliation
	elements []*VNode

	// node is the realized backend node, nil until created
	node Node

	parent    *Fiber
	child     *Fiber
	sibling   *Fiber
	alternate *Fiber

	effect EffectTag

	// watch subscribes props to mutation notifications; owned by this
	// fiber, released when it is superseded or deleted
	watch *reactive.Watcher

	key string
}

// next returns the following fiber in pre-order: child first, otherwise
// the sibling of the nearest ancestor that has one.
func (f *Fiber) next() *Fiber {
	if f.child != nil {
		return f.child
	}

	for n := f; n != nil; n = n.parent {
		if n.sibling != nil {
			return n.sibling
		}
	}

	return nil
}

func (f *Fiber) typeName() string {
	if f.kind == KindComponent {
		return "component"
	}
	return f.tag
}

// sameType reports whether a fiber and a descriptor describe the same node
// type: equal tags for hosts, identical functions for components.
func sameType(f *Fiber, el *VNode) bool {
	if f.kind != el.Kind {
		return false
	}
	if el.Kind == KindHost {
		return f.tag == el.Tag
	}
	return funcPtr(f.fn) == funcPtr(el.Fn)
}
