package settings

import (
	"strings"
	"testing"

	"jumper-tui/config"
	"jumper-tui/views"

	"github.com/stretchr/testify/assert"
)

func TestRows(t *testing.T) {
	rows := Rows(config.DefaultConfig().Settings, "12.00 gwei")
	if assert.Len(t, rows, 5) {
		assert.Equal(t, "Best Return", rows[RowRoutePriority].Value)
		assert.Equal(t, "Normal", rows[RowGasPrice].Value)
		assert.Equal(t, "12.00 gwei", rows[RowGasPrice].Detail)
		assert.Equal(t, "0.5%", rows[RowSlippage].Value)
		assert.Equal(t, "20/20", rows[RowBridges].Value)
		assert.Equal(t, "32/32", rows[RowExchanges].Value)
		assert.False(t, rows[RowBridges].Editable)
		assert.False(t, rows[RowExchanges].Editable)
	}
}

func TestOptions(t *testing.T) {
	assert.Equal(t, config.GasPrices, Options(RowGasPrice))
	assert.Nil(t, Options(RowBridges))
}

func TestRender(t *testing.T) {
	rows := Rows(config.DefaultConfig().Settings, "")
	out, areas := Render(rows, 1, 50)
	lines := strings.Split(out, "\n")

	n := 0
	for _, a := range areas {
		if a.Action != views.ActionSettingsRow {
			continue
		}
		n++
		assert.Contains(t, lines[a.Y], rows[a.Index].Label)
	}
	assert.Equal(t, len(rows), n)
	assert.Contains(t, out, "▶ ")
}

func TestCreateForm(t *testing.T) {
	rows := Rows(config.DefaultConfig().Settings, "")
	form := CreateForm(rows[RowSlippage], Options(RowSlippage))
	assert.NotNil(t, form)
	assert.Equal(t, "0.5%", TempSelection)
	assert.Contains(t, form.View(), "Max. slippage")
}
