package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/etnz/eggworth"
)

// RichestMarkdown renders one page of the roster with each fortune
// converted to eggs at unitPrice.
func RichestMarkdown(page []eggworth.WealthEntry, unitPrice eggworth.Amount) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Top Egg Billionaires")
	doc.PlainText(fmt.Sprintf("At %s per egg:", unitPrice.Display()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Rank", "Name", "Company", "Country", "Net Worth", "Egg Worth"},
		Rows:   [][]string{},
	}
	for _, person := range page {
		eggs, err := person.EggWorth(unitPrice)
		if err != nil {
			continue
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(person.Rank),
			person.Name,
			person.Company,
			person.Country,
			fmt.Sprintf("$%s Billion", person.NetWorth),
			eggs.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
