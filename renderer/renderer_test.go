package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/eggworth"
	"github.com/etnz/eggworth/period"
)

func TestWorthMarkdown(t *testing.T) {
	got := WorthMarkdown(eggworth.A(50000), eggworth.A(0.25), "May 2023", 200_000)

	for _, want := range []string{"$50,000.00", "200,000", "$0.25", "May 2023"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestRichestMarkdown(t *testing.T) {
	page, _ := eggworth.DefaultRoster().List(3, 0)
	got := RichestMarkdown(page, eggworth.A(0.25))

	for _, want := range []string{"Elon Musk", "936.00 Billion", "$234 Billion", "LVMH"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	points := eggworth.BuildSeries(eggworth.A(50000), []eggworth.PriceSample{
		{Period: period.Yearly(1950), UnitPrice: eggworth.A(0.06)},
		{Period: period.Yearly(2023), UnitPrice: eggworth.A(0.25)},
	})
	got := HistoryMarkdown(eggworth.A(50000), points)

	for _, want := range []string{"1950", "833,333", "2023", "200,000"} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdownEmpty(t *testing.T) {
	got := HistoryMarkdown(eggworth.A(50000), nil)
	if !strings.Contains(got, "No historical prices") {
		t.Errorf("empty series must render a placeholder, got:\n%s", got)
	}
}
