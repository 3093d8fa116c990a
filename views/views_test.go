package views

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestClickableArea_Contains(t *testing.T) {
	a := ClickableArea{X: 2, Y: 3, Width: 4, Height: 2}
	assert.True(t, a.Contains(2, 3))
	assert.True(t, a.Contains(5, 4))
	assert.False(t, a.Contains(6, 4))
	assert.False(t, a.Contains(2, 5))
	assert.False(t, a.Contains(1, 3))
}

func TestHit_LastWins(t *testing.T) {
	areas := []ClickableArea{
		{X: 0, Y: 0, Width: 10, Height: 10, Action: ActionMenu},
		{X: 2, Y: 2, Width: 2, Height: 1, Action: ActionCopyLink},
	}
	a, ok := Hit(areas, 3, 2)
	assert.True(t, ok)
	assert.Equal(t, ActionCopyLink, a.Action)

	a, ok = Hit(areas, 8, 8)
	assert.True(t, ok)
	assert.Equal(t, ActionMenu, a.Action)

	_, ok = Hit(areas, 20, 20)
	assert.False(t, ok)
}

func TestStack(t *testing.T) {
	var s Stack
	assert.Equal(t, 0, s.Add("title"))
	s.AddClickable("one\ntwo", ActionOpenFrom, 0)
	top := s.Add("x")
	s.Register(top, ClickableArea{X: 1, Width: 1, Height: 1, Action: ActionOpenTo})

	assert.Equal(t, 4, s.Height())
	assert.Equal(t, 4, lipgloss.Height(s.String()))
	assert.Equal(t, 5, lipgloss.Width(s.String()))
	assert.Equal(t, []ClickableArea{
		{X: 0, Y: 1, Width: 3, Height: 2, Action: ActionOpenFrom},
		{X: 1, Y: 3, Width: 1, Height: 1, Action: ActionOpenTo},
	}, s.Areas())
}

func TestOffset(t *testing.T) {
	got := Offset([]ClickableArea{{X: 1, Y: 1, Width: 1, Height: 1}}, 2, 3)
	assert.Equal(t, 3, got[0].X)
	assert.Equal(t, 4, got[0].Y)
}
