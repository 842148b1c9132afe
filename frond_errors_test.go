package frond

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frondlabs/frond/reactive"
	"github.com/frondlabs/frond/renderers"
)

// failingRenderer fails a single configured operation and delegates the
// rest to a dict renderer.
type failingRenderer struct {
	*renderers.Dict
	failOp string
	err    error
}

func (f *failingRenderer) CreateNode(tag string) (Node, error) {
	if f.failOp == "create" {
		return nil, f.err
	}
	return f.Dict.CreateNode(tag)
}

func (f *failingRenderer) Insert(node, parent Node) error {
	if f.failOp == "insert" {
		return f.err
	}
	return f.Dict.Insert(node, parent)
}

func TestErrors(t *testing.T) {
	t.Run("a panicking component aborts the pass", func(t *testing.T) {
		engine := New(newRecorder())
		container := renderers.NewDictNode("container")

		boom := Component(func(props *reactive.Map) *VNode {
			panic("kaput")
		})

		var fromCallback error
		err := engine.Render(F(boom, nil), container, func(err error) {
			fromCallback = err
		})

		require.Error(t, err)
		var cerr *ComponentError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "kaput", cerr.Recovered)
		assert.Equal(t, err, fromCallback)

		assert.Empty(t, container.Children, "nothing was committed")
	})

	t.Run("a failing create aborts the render phase", func(t *testing.T) {
		cause := errors.New("out of widgets")
		engine := New(&failingRenderer{Dict: renderers.NewDict(), failOp: "create", err: cause})
		container := renderers.NewDictNode("container")

		err := engine.Render(H("box", nil), container, nil)

		require.Error(t, err)
		var berr *BackendError
		require.ErrorAs(t, err, &berr)
		assert.Equal(t, "create", berr.Op)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("a failing insert aborts the commit without rollback", func(t *testing.T) {
		cause := errors.New("detached parent")
		engine := New(&failingRenderer{Dict: renderers.NewDict(), failOp: "insert", err: cause})
		container := renderers.NewDictNode("container")

		err := engine.Render(H("box", nil, H("a", nil)), container, nil)

		require.Error(t, err)
		var berr *BackendError
		require.ErrorAs(t, err, &berr)
		assert.Equal(t, "insert", berr.Op)
	})

	t.Run("the engine recovers on the next full render", func(t *testing.T) {
		rec := newRecorder()
		engine := New(rec)
		container := renderers.NewDictNode("container")

		boom := Component(func(props *reactive.Map) *VNode {
			panic("kaput")
		})
		require.Error(t, engine.Render(F(boom, nil), container, nil))

		require.NoError(t, engine.Render(H("box", nil), container, nil))
		assert.Len(t, container.Children, 1)
	})

	t.Run("an element type must be a tag or a component", func(t *testing.T) {
		assert.Panics(t, func() {
			CreateElement(42, nil)
		})
	})
}
