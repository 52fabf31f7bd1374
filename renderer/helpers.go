package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// table writes a markdown table header. align is one of "l" or "r" per column.
func table(w io.Writer, align string, headers ...string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(headers, " | "))
	cells := make([]string, len(headers))
	for i := range cells {
		cells[i] = ":---"
		if i < len(align) && align[i] == 'r' {
			cells[i] = "---:"
		}
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(cells, "|"))
}

// row writes a markdown table row.
func row(w io.Writer, cells ...any) {
	s := make([]string, len(cells))
	for i, c := range cells {
		s[i] = strings.ReplaceAll(fmt.Sprint(c), "|", `\|`)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(s, " | "))
}

// bar renders a count as a proportional bar of at most width characters.
func bar(count, top, width int) string {
	if top <= 0 || count <= 0 {
		return ""
	}
	n := count * width / top
	if n == 0 {
		n = 1
	}
	return strings.Repeat("█", n)
}
