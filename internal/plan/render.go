package plan

import (
	"fmt"
	"strings"
)

// RenderMove formats a proposed batch move as a deterministic, ordered
// source → destination mapping. Input order is reproduced exactly; no
// sorting, no deduplication. The renderer is a view, not a parser: it
// knows nothing about how the plan was produced.
func RenderMove(sources []string, destination string) string {
	var b strings.Builder

	b.WriteString("Proposed file operations\n")
	b.WriteString(strings.Repeat("-", 72))
	b.WriteString("\n")
	for _, src := range sources {
		fmt.Fprintf(&b, "%s  →  %s\n", src, destination)
	}
	b.WriteString(strings.Repeat("-", 72))
	fmt.Fprintf(&b, "\n%d file(s) will be moved to %s\n", len(sources), destination)

	return b.String()
}

// DescribeSearch formats a search operation for status output.
func DescribeSearch(op *SearchOp) string {
	var b strings.Builder
	fmt.Fprintf(&b, "search %q in %s", op.Pattern, op.Root)
	if op.Keyword != "" {
		fmt.Fprintf(&b, " (keyword %q)", op.Keyword)
	}
	if op.Recursive {
		b.WriteString(" recursively")
	}
	return b.String()
}
