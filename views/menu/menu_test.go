package menu

import (
	"strings"
	"testing"

	"jumper-tui/views"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	items := []string{"Stargate", "Symbiosis", "Toggle log", "Quit"}
	out, areas := Render(items, 0)
	lines := strings.Split(out, "\n")

	assert.Len(t, areas, len(items))
	for _, a := range areas {
		assert.Equal(t, views.ActionMenuItem, a.Action)
		assert.Contains(t, lines[a.Y], items[a.Index])
		assert.Equal(t, 3, a.X)
	}
}
