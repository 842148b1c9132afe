package frond

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"

	"github.com/frondlabs/frond/renderers"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recorder wraps the dict renderer and logs every backend call.
type recorder struct {
	dict  *renderers.Dict
	calls []string
}

func newRecorder() *recorder {
	return &recorder{dict: renderers.NewDict()}
}

func (r *recorder) reset() {
	r.calls = nil
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) CreateNode(tag string) (Node, error) {
	r.record("create(%s)", tag)
	return r.dict.CreateNode(tag)
}

func (r *recorder) Insert(node, parent Node) error {
	r.record("insert(%s,%s)", nodeType(node), nodeType(parent))
	return r.dict.Insert(node, parent)
}

func (r *recorder) Remove(node, parent Node) error {
	r.record("remove(%s)", nodeType(node))
	return r.dict.Remove(node, parent)
}

func (r *recorder) SetAttribute(node Node, key string, value any) error {
	r.record("set(%s=%v)", key, value)
	return r.dict.SetAttribute(node, key, value)
}

func (r *recorder) ClearAttribute(node Node, key string, prev any) error {
	r.record("clear(%s)", key)
	return r.dict.ClearAttribute(node, key, prev)
}

func (r *recorder) AddEventListener(node Node, event string, handler Handler) error {
	r.record("listen(%s)", event)
	return r.dict.AddEventListener(node, event, handler)
}

func (r *recorder) RemoveEventListener(node Node, event string, handler Handler) error {
	r.record("unlisten(%s)", event)
	return r.dict.RemoveEventListener(node, event, handler)
}

func nodeType(node Node) string {
	if n, ok := node.(*renderers.DictNode); ok {
		return n.Type
	}
	return fmt.Sprintf("%T", node)
}

// shape is the structural projection of a rendered tree: type tags and
// child order, nothing else.
type shape struct {
	Type     string
	Children []shape
}

func treeShape(n *renderers.DictNode) shape {
	s := shape{Type: n.Type}
	for _, c := range n.Children {
		s.Children = append(s.Children, treeShape(c))
	}
	return s
}

func countPrefix(calls []string, prefix string) int {
	count := 0
	for _, call := range calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			count++
		}
	}
	return count
}
