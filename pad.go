package linelog

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// kindLabelWidth is the fixed column width of the kind label.
const kindLabelWidth = 10

// padField left-aligns s in a field of width display columns. Text that is
// already as wide as the field is returned unchanged; a zero width means the
// natural length.
func padField(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
