package gamey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker(t *testing.T) {
	t.Run("Fresh tracker has not won", func(t *testing.T) {
		tr := NewTracker(6)
		assert.False(t, tr.Won())
	})

	t.Run("Disconnected sides do not win", func(t *testing.T) {
		tr := NewTracker(6)
		tr.TouchSide(0, SideY)
		tr.TouchSide(0, SideZ)
		tr.TouchSide(3, SideX)
		assert.False(t, tr.Won())
		assert.False(t, tr.Connected(0, 3))
	})

	t.Run("Joining two side groups wins", func(t *testing.T) {
		tr := NewTracker(6)
		tr.TouchSide(0, SideY)
		tr.TouchSide(0, SideZ)
		tr.TouchSide(3, SideX)

		tr.Connect(0, 1)
		assert.False(t, tr.Won())

		tr.Connect(1, 3)
		assert.True(t, tr.Won())
		assert.True(t, tr.Connected(0, 3))
	})

	t.Run("Clone is independent", func(t *testing.T) {
		tr := NewTracker(3)
		tr.TouchSide(0, SideX)
		c := tr.clone()
		c.TouchSide(0, SideY)
		c.TouchSide(0, SideZ)

		assert.True(t, c.Won())
		assert.False(t, tr.Won())
	})
}
