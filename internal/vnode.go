package internal

import (
	"fmt"

	"github.com/frondlabs/frond/reactive"
)

// Kind distinguishes the two descriptor variants, resolved once at
// construction time.
type Kind int

const (
	// KindHost describes a backend node identified by an opaque type tag.
	KindHost Kind = iota
	// KindComponent describes a callable that produces one child descriptor.
	KindComponent
)

// Component produces exactly one child descriptor from its props.
type Component func(props *reactive.Map) *VNode

// VNode is an immutable description of one desired tree node.
type VNode struct {
	Kind Kind
	Tag  string    // host type tag, KindHost only
	Fn   Component // descriptor factory, KindComponent only

	Props    *reactive.Map
	Children []*VNode

	// Key is an identity hint carried from the reserved "key" prop. It is
	// accepted and stored but matching is purely positional.
	Key string
}

// NewElement builds a descriptor from a host tag or a Component. The
// reserved "key" prop is extracted; listener-shaped values are normalized
// to Handler.
func NewElement(typ any, props map[string]any, children ...*VNode) *VNode {
	el := &VNode{Children: children}

	switch t := typ.(type) {
	case string:
		el.Kind = KindHost
		el.Tag = t
	case Component:
		el.Kind = KindComponent
		el.Fn = t
	case func(*reactive.Map) *VNode:
		el.Kind = KindComponent
		el.Fn = t
	default:
		panic(fmt.Sprintf("frond: element type must be a string tag or a Component, got %T", typ))
	}

	el.Key, el.Props = splitProps(props)

	return el
}

func splitProps(props map[string]any) (string, *reactive.Map) {
	if len(props) == 0 {
		return "", reactive.NewMap()
	}

	key := ""
	clean := make(map[string]any, len(props))
	for name, value := range props {
		if name == "key" {
			key, _ = value.(string)
			continue
		}
		if isListener(name) {
			if fn, ok := value.(func(...any)); ok {
				value = Handler(fn)
			}
		}
		clean[name] = value
	}

	return key, reactive.FromMap(clean)
}
