package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("coalesces multiple writes into one delivery", func(t *testing.T) {
		m := NewMap()
		fired := 0
		Watch(m, func() { fired++ })

		Batch(func() {
			m.Set("a", 1)
			m.Set("b", 2)
			m.Set("c", 3)
		})

		assert.Equal(t, 1, fired)
	})

	t.Run("nested batches flush at the outermost boundary", func(t *testing.T) {
		m := NewMap()
		fired := 0
		Watch(m, func() { fired++ })

		Batch(func() {
			m.Set("a", 1)
			Batch(func() {
				m.Set("b", 2)
			})
			assert.Zero(t, fired, "inner batch must not flush")
		})

		assert.Equal(t, 1, fired)
	})

	t.Run("distinct watchers each get one delivery", func(t *testing.T) {
		a := NewMap()
		b := NewMap()

		firedA, firedB := 0, 0
		Watch(a, func() { firedA++ })
		Watch(b, func() { firedB++ })

		Batch(func() {
			a.Set("x", 1)
			b.Set("x", 1)
			a.Set("y", 2)
		})

		assert.Equal(t, 1, firedA)
		assert.Equal(t, 1, firedB)
	})

	t.Run("writes during flush are delivered too", func(t *testing.T) {
		a := NewMap()
		b := NewMap()

		firedB := 0
		Watch(a, func() { b.Set("x", 1) })
		Watch(b, func() { firedB++ })

		Batch(func() {
			a.Set("x", 1)
		})

		assert.Equal(t, 1, firedB)
	})

	t.Run("an empty batch delivers nothing", func(t *testing.T) {
		m := NewMap()
		fired := 0
		Watch(m, func() { fired++ })

		Batch(func() {})

		assert.Zero(t, fired)
	})
}
