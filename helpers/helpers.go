package helpers

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ethereum/go-ethereum/common"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
	"github.com/shopspring/decimal"
)

// ShortenAddr shortens an Ethereum address for display
func ShortenAddr(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

// IsValidEthAddress checks if a string is a valid Ethereum address
func IsValidEthAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// ChecksumAddress returns the EIP-55 form of addr, or addr unchanged when it
// is not a hex address
func ChecksumAddress(addr string) string {
	if !IsValidEthAddress(addr) {
		return addr
	}
	return common.HexToAddress(addr).Hex()
}

// USDValue estimates amountText worth of a token priced at price.
// Unparseable or empty amounts and unpriced tokens give "$0.00".
func USDValue(amountText string, price decimal.Decimal, hasPrice bool) string {
	zero := "$0.00"
	if !hasPrice {
		return zero
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(amountText))
	if err != nil || amount.IsNegative() {
		return zero
	}
	return "$" + amount.Mul(price).StringFixed(2)
}

// FormatPrice renders a token price, or "-" when none is known
func FormatPrice(price decimal.Decimal, hasPrice bool) string {
	if !hasPrice {
		return "-"
	}
	if price.LessThan(decimal.NewFromInt(1)) {
		return "$" + price.StringFixed(4)
	}
	return "$" + price.StringFixed(2)
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	n := len([]rune(s))
	if n == 0 {
		return ""
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), n)
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	i := 0
	for _, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
		i++
	}
	return b.String()
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Truncate cuts s to at most n runes, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
