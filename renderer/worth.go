// Package renderer turns computed egg worth into markdown reports for
// terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/eggworth"
)

// WorthMarkdown renders the single-income calculator view.
func WorthMarkdown(income, unitPrice eggworth.Amount, asOf string, eggs eggworth.Count) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Your Egg Worth")
	doc.PlainText(fmt.Sprintf("With an annual income of %s you could buy **%s** eggs.", income.Display(), eggs))

	if asOf != "" {
		doc.PlainText(fmt.Sprintf("Price per egg: %s (as of %s)", unitPrice.Display(), asOf))
	} else {
		doc.PlainText(fmt.Sprintf("Price per egg: %s", unitPrice.Display()))
	}

	return doc.String()
}
