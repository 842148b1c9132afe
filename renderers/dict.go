// Package renderers provides concrete backends for the frond engine.
package renderers

import (
	"fmt"
	"reflect"

	"github.com/frondlabs/frond/internal"
)

// DictNode is the in-memory backend node: a plain record of type tag,
// attributes, listeners and ordered children. Useful as a default target
// and for asserting tree shapes in tests.
type DictNode struct {
	Type     string
	Attrs    map[string]any
	Handlers map[string][]internal.Handler
	Children []*DictNode
}

// NewDictNode creates a detached node, typically used as a render container.
func NewDictNode(typ string) *DictNode {
	return &DictNode{
		Type:     typ,
		Attrs:    make(map[string]any),
		Handlers: make(map[string][]internal.Handler),
	}
}

// Dict renders into a tree of *DictNode values.
type Dict struct{}

func NewDict() *Dict {
	return &Dict{}
}

func (d *Dict) CreateNode(tag string) (internal.Node, error) {
	return NewDictNode(tag), nil
}

func (d *Dict) Insert(node, parent internal.Node) error {
	child, err := dictNode(node)
	if err != nil {
		return err
	}
	p, err := dictNode(parent)
	if err != nil {
		return err
	}

	p.Children = append(p.Children, child)
	return nil
}

func (d *Dict) Remove(node, parent internal.Node) error {
	child, err := dictNode(node)
	if err != nil {
		return err
	}
	p, err := dictNode(parent)
	if err != nil {
		return err
	}

	for i, c := range p.Children {
		if c == child {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("renderers: %q is not a child of %q", child.Type, p.Type)
}

func (d *Dict) SetAttribute(node internal.Node, key string, value any) error {
	n, err := dictNode(node)
	if err != nil {
		return err
	}

	n.Attrs[key] = value
	return nil
}

func (d *Dict) ClearAttribute(node internal.Node, key string, prev any) error {
	n, err := dictNode(node)
	if err != nil {
		return err
	}

	delete(n.Attrs, key)
	return nil
}

func (d *Dict) AddEventListener(node internal.Node, event string, handler internal.Handler) error {
	n, err := dictNode(node)
	if err != nil {
		return err
	}

	n.Handlers[event] = append(n.Handlers[event], handler)
	return nil
}

func (d *Dict) RemoveEventListener(node internal.Node, event string, handler internal.Handler) error {
	n, err := dictNode(node)
	if err != nil {
		return err
	}

	ptr := reflect.ValueOf(handler).Pointer()
	handlers := n.Handlers[event]
	for i, h := range handlers {
		if reflect.ValueOf(h).Pointer() == ptr {
			n.Handlers[event] = append(handlers[:i], handlers[i+1:]...)
			return nil
		}
	}
	return nil
}

// Emit dispatches an event on a node, invoking its listeners in
// registration order. It stands in for the host toolkit's event delivery.
func (d *Dict) Emit(node internal.Node, event string, args ...any) error {
	n, err := dictNode(node)
	if err != nil {
		return err
	}

	for _, h := range append([]internal.Handler(nil), n.Handlers[event]...) {
		h(args...)
	}
	return nil
}

func dictNode(node internal.Node) (*DictNode, error) {
	n, ok := node.(*DictNode)
	if !ok {
		return nil, fmt.Errorf("renderers: expected *DictNode, got %T", node)
	}
	return n, nil
}
