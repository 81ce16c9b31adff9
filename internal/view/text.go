// internal/view/text.go
package view

import (
	"bufio"
	"io"
	"strings"
)

// Text renders results as plain text for terminals.
type Text struct{}

func (Text) Render(w io.Writer, r Results) error {
	bw := bufio.NewWriter(w)
	if r.IsEmpty() {
		bw.WriteString(r.Empty + "\n")
		return bw.Flush()
	}

	bw.WriteString(r.Summary + "\n")
	for _, c := range r.Cards {
		bw.WriteString("\n* " + c.Title)
		if c.Subtitle != "" {
			bw.WriteString(" (" + c.Subtitle + ")")
		}
		bw.WriteString("\n")
		for _, line := range c.Lines {
			bw.WriteString("    " + line + "\n")
		}
		if len(c.Tags) > 0 {
			bw.WriteString("    [" + strings.Join(c.Tags, ", ") + "]\n")
		}
		if c.Meta != "" {
			bw.WriteString("    " + c.Meta + "\n")
		}
	}
	return bw.Flush()
}
