// Package views holds the types shared by the screen renderers. Each screen
// package renders a string and the clickable regions it drew, relative to
// its own top-left corner; the caller shifts them into screen coordinates.
package views

import "github.com/charmbracelet/lipgloss"

// Action identifies what a click on a region does
type Action int

const (
	ActionNone Action = iota
	ActionOpenFrom
	ActionOpenTo
	ActionSettings
	ActionSetMode // Index is the swapform.Mode
	ActionFocusAmount
	ActionFocusWallet
	ActionToggleWallet
	ActionConnect
	ActionMenu
	ActionBack
	ActionToken // Index is the position in the filtered catalog
	ActionRetry
	ActionSettingsRow // Index is the row
	ActionMenuItem    // Index is the item
	ActionCopyLink
	ActionDisconnect
)

// ClickableArea represents a clickable region for mouse support
type ClickableArea struct {
	X, Y          int
	Width, Height int
	Action        Action
	Index         int
}

// Contains reports whether the cell (x, y) falls inside the area
func (a ClickableArea) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Offset shifts every area by dx, dy
func Offset(areas []ClickableArea, dx, dy int) []ClickableArea {
	out := make([]ClickableArea, len(areas))
	for i, a := range areas {
		a.X += dx
		a.Y += dy
		out[i] = a
	}
	return out
}

// Hit returns the last registered area containing (x, y). Later areas are
// drawn on top of earlier ones.
func Hit(areas []ClickableArea, x, y int) (ClickableArea, bool) {
	for i := len(areas) - 1; i >= 0; i-- {
		if areas[i].Contains(x, y) {
			return areas[i], true
		}
	}
	return ClickableArea{}, false
}

// Stack joins blocks vertically and tracks the row each block starts on so
// renderers can register clickable areas as they go.
type Stack struct {
	blocks []string
	areas  []ClickableArea
	y      int
}

// Add appends a block and returns the row it starts on
func (s *Stack) Add(block string) int {
	top := s.y
	s.blocks = append(s.blocks, block)
	s.y += lipgloss.Height(block)
	return top
}

// AddClickable appends a block whose whole extent triggers action
func (s *Stack) AddClickable(block string, action Action, index int) {
	top := s.Add(block)
	s.areas = append(s.areas, ClickableArea{
		X:      0,
		Y:      top,
		Width:  lipgloss.Width(block),
		Height: lipgloss.Height(block),
		Action: action,
		Index:  index,
	})
}

// Register records areas relative to the row a block started on
func (s *Stack) Register(top int, areas ...ClickableArea) {
	s.areas = append(s.areas, Offset(areas, 0, top)...)
}

// Height is the number of rows added so far
func (s *Stack) Height() int { return s.y }

// String renders the stacked blocks
func (s *Stack) String() string {
	return lipgloss.JoinVertical(lipgloss.Left, s.blocks...)
}

// Areas returns the registered areas
func (s *Stack) Areas() []ClickableArea { return s.areas }
