package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
		{2, 2, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.x, tt.y), "(%d,%d)", tt.x, tt.y)
	}
}

func TestOverlay_OutsidePressClosesOnce(t *testing.T) {
	doc := NewDocument()
	o := New(doc, "menu")
	o.Open()
	o.SetBounds(Rect{X: 10, Y: 5, Width: 20, Height: 6})

	doc.Dispatch(press(0, 0))
	assert.False(t, o.IsOpen())
	assert.Equal(t, 1, o.Closed())

	doc.Dispatch(press(1, 1))
	assert.Equal(t, 1, o.Closed(), "listener is gone once closed")
	assert.Equal(t, 0, doc.Len())
}

func TestOverlay_InsidePressKeepsOpen(t *testing.T) {
	doc := NewDocument()
	o := New(doc, "modal")
	o.Open()
	o.SetBounds(Rect{X: 10, Y: 5, Width: 20, Height: 6})

	doc.Dispatch(press(10, 5))
	doc.Dispatch(press(29, 10))
	assert.True(t, o.IsOpen())
	assert.Equal(t, 0, o.Closed())
}

func TestOverlay_SecondaryRegionCountsAsInside(t *testing.T) {
	doc := NewDocument()
	o := New(doc, "menu")
	o.Open()
	o.SetBounds(Rect{X: 50, Y: 3, Width: 20, Height: 8}, Rect{X: 60, Y: 1, Width: 8, Height: 1})

	doc.Dispatch(press(62, 1))
	assert.True(t, o.IsOpen())
}

func TestOverlay_IgnoresNonPressEvents(t *testing.T) {
	doc := NewDocument()
	o := New(doc, "menu")
	o.Open()

	doc.Dispatch(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion})
	doc.Dispatch(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	doc.Dispatch(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.True(t, o.IsOpen())
}

func TestOverlay_ListenerLifecycle(t *testing.T) {
	doc := NewDocument()
	o := New(doc, "menu")
	assert.Equal(t, 0, doc.Len())

	o.Open()
	o.Open()
	assert.Equal(t, 1, doc.Len(), "one listener per open overlay")

	o.Close()
	o.Close()
	assert.Equal(t, 0, doc.Len())
	assert.Equal(t, 1, o.Closed())

	o.Toggle()
	assert.True(t, o.IsOpen())
	o.Toggle()
	assert.False(t, o.IsOpen())
	assert.Equal(t, 0, doc.Len())
}

func TestOverlay_OnCloseHook(t *testing.T) {
	doc := NewDocument()
	o := New(doc, "modal")
	calls := 0
	o.OnClose(func() { calls++ })

	o.Open()
	doc.Dispatch(press(3, 3))
	o.Close()
	assert.Equal(t, 1, calls)
}

func TestDocument_TwoOverlaysIndependent(t *testing.T) {
	doc := NewDocument()
	menu := New(doc, "menu")
	modal := New(doc, "modal")
	menu.Open()
	modal.Open()
	menu.SetBounds(Rect{X: 0, Y: 0, Width: 10, Height: 10})
	modal.SetBounds(Rect{X: 20, Y: 0, Width: 10, Height: 10})

	doc.Dispatch(press(5, 5))
	assert.True(t, menu.IsOpen())
	assert.False(t, modal.IsOpen())
	assert.Equal(t, 1, doc.Len())
}

func TestDocument_ReleaseIsIdempotent(t *testing.T) {
	doc := NewDocument()
	hits := 0
	release := doc.Listen(func(tea.MouseMsg) { hits++ })
	other := doc.Listen(func(tea.MouseMsg) {})

	doc.Dispatch(press(0, 0))
	release()
	release()
	doc.Dispatch(press(0, 0))

	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, doc.Len())
	other()
	assert.Equal(t, 0, doc.Len())
}
