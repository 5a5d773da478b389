package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/eggworth"
)

// HistoryMarkdown renders the historical purchasing-power series.
func HistoryMarkdown(income eggworth.Amount, points []eggworth.WorthPoint) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Historical Egg Worth")
	doc.PlainText(fmt.Sprintf("How many eggs an income of %s bought through history:", income.Display()))

	if len(points) == 0 {
		doc.PlainText("No historical prices available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Year", "Egg Price", "Eggs You Could Buy"},
		Rows:   [][]string{},
	}
	for _, p := range points {
		table.Rows = append(table.Rows, []string{
			p.Period.Label(),
			p.UnitPrice.Display(),
			p.Eggs.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
