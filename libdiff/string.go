package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders a character diff of two strings in wdiff-style
// inline markers: deletions as [-text-], insertions as {+text+}.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	var b strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(diff.Text)
			b.WriteString("+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(diff.Text)
			b.WriteString("-]")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}
