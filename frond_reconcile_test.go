package frond

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frondlabs/frond/renderers"
)

func TestReconcilePositional(t *testing.T) {
	items := func(n int) []*VNode {
		children := make([]*VNode, n)
		for i := range children {
			children[i] = H("item", nil)
		}
		return children
	}

	cases := []struct {
		before, after int
	}{
		{before: 0, after: 3},
		{before: 3, after: 3},
		{before: 3, after: 5},
		{before: 5, after: 2},
		{before: 4, after: 0},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%d items to %d", tc.before, tc.after)
		t.Run(name, func(t *testing.T) {
			rec := newRecorder()
			engine := New(rec)
			container := renderers.NewDictNode("container")

			require.NoError(t, engine.Render(
				H("list", nil, items(tc.before)...), container, nil))
			rec.reset()

			require.NoError(t, engine.Render(
				H("list", nil, items(tc.after)...), container, nil))

			creates := max(0, tc.after-tc.before)
			removes := max(0, tc.before-tc.after)
			assert.Equal(t, creates, countPrefix(rec.calls, "create("), "placements")
			assert.Equal(t, removes, countPrefix(rec.calls, "remove("), "deletions")
			assert.Equal(t, creates, countPrefix(rec.calls, "insert("), "insertions")
			assert.Zero(t, countPrefix(rec.calls, "set("), "updates touch no props")

			assert.Len(t, container.Children[0].Children, tc.after)
		})
	}

	t.Run("sibling order always matches descriptor order", func(t *testing.T) {
		rec := newRecorder()
		engine := New(rec)
		container := renderers.NewDictNode("container")

		require.NoError(t, engine.Render(
			H("list", nil, H("a", nil), H("b", nil), H("c", nil)), container, nil))

		list := container.Children[0]
		var got []string
		for _, c := range list.Children {
			got = append(got, c.Type)
		}
		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("a type change mid-list replaces only that position", func(t *testing.T) {
		rec := newRecorder()
		engine := New(rec)
		container := renderers.NewDictNode("container")

		require.NoError(t, engine.Render(
			H("list", nil, H("a", nil), H("b", nil), H("c", nil)), container, nil))
		rec.reset()

		require.NoError(t, engine.Render(
			H("list", nil, H("a", nil), H("x", nil), H("c", nil)), container, nil))

		assert.Equal(t, 1, countPrefix(rec.calls, "create("))
		assert.Equal(t, 1, countPrefix(rec.calls, "remove("))

		list := container.Children[0]
		var got []string
		for _, c := range list.Children {
			got = append(got, c.Type)
		}
		assert.Equal(t, []string{"a", "c", "x"}, got)
	})
}
