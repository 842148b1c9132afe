// Package frond is an incremental, interruptible UI-tree reconciliation
// engine. Given a virtual tree of typed node descriptors it computes and
// applies the minimal set of backend mutations that bring a persistent
// target tree into agreement, yielding control back to a host event loop
// between units of work so the loop never blocks for more than a bounded
// time slice.
//
// The backend is pluggable (see Renderer); the renderers package ships an
// in-memory implementation and examples/browser-counter drives a wasm DOM.
// Re-renders are triggered by mutating a descriptor's reactive props.
package frond

import "github.com/frondlabs/frond/internal"

type (
	// VNode is an immutable description of one desired tree node.
	VNode = internal.VNode

	// Component is a callable node type: given props it produces exactly
	// one child descriptor.
	Component = internal.Component

	// Renderer is the backend contract the engine's committer drives.
	Renderer = internal.Renderer

	// Node is an opaque backend node reference.
	Node = internal.Node

	// Handler is the value shape of "on"-prefixed listener props.
	Handler = internal.Handler
)

// CreateElement builds a descriptor from a host type tag (string) or a
// Component, a prop map and child descriptors. The reserved "key" prop is
// an identity hint; "on<Event>" props bind event listeners, with the event
// name matched case-insensitively on the segment after "on".
func CreateElement(typ any, props map[string]any, children ...*VNode) *VNode {
	return internal.NewElement(typ, props, children...)
}

// H builds a host descriptor.
func H(tag string, props map[string]any, children ...*VNode) *VNode {
	return internal.NewElement(tag, props, children...)
}

// F builds a component descriptor.
func F(fn Component, props map[string]any, children ...*VNode) *VNode {
	return internal.NewElement(fn, props, children...)
}
