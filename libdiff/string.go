package libdiff

import (
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var (
	deleteColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
	insertColor = color.New(color.FgGreen, color.Underline).SprintFunc()
)

// DiffText renders the character differences between from and to in one
// string.  Without colors deletions read [-text-] and insertions {+text+};
// with colors they are struck out red and underlined green.
func DiffText(from, to string, colors bool) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, strings.Contains(from, "\n") && strings.Contains(to, "\n"))
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		case diffpatch.DiffDelete:
			if colors {
				b.WriteString(deleteColor(d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffInsert:
			if colors {
				b.WriteString(insertColor(d.Text))
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		}
	}
	return b.String()
}
