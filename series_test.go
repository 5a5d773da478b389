package eggworth

import (
	"testing"

	"github.com/etnz/eggworth/period"
)

func TestBuildSeriesEmpty(t *testing.T) {
	if got := BuildSeries(A(50000), nil); len(got) != 0 {
		t.Errorf("BuildSeries on empty input = %v, want empty", got)
	}
}

func TestBuildSeries(t *testing.T) {
	samples := []PriceSample{
		{Period: period.Yearly(1950), UnitPrice: A(0.06)},
		{Period: period.Yearly(1980), UnitPrice: A(0.12)},
		{Period: period.Yearly(2023), UnitPrice: A(0.25)},
	}
	points := BuildSeries(A(50000), samples)

	if len(points) != len(samples) {
		t.Fatalf("len = %d, want %d", len(points), len(samples))
	}
	wantEggs := []Count{833_333, 416_666, 200_000}
	for i, p := range points {
		if p.Period != samples[i].Period {
			t.Errorf("point %d period = %s, want %s: order must be preserved", i, p.Period, samples[i].Period)
		}
		if !p.UnitPrice.Equal(samples[i].UnitPrice) {
			t.Errorf("point %d price = %s, want %s", i, p.UnitPrice, samples[i].UnitPrice)
		}
		if p.Eggs != wantEggs[i] {
			t.Errorf("point %d eggs = %d, want %d", i, p.Eggs, wantEggs[i])
		}
	}
}

// Repeated periods in the source are retained, not deduplicated.
func TestBuildSeriesKeepsDuplicates(t *testing.T) {
	samples := []PriceSample{
		{Period: period.Yearly(2020), UnitPrice: A(0.23)},
		{Period: period.Yearly(2020), UnitPrice: A(0.24)},
	}
	points := BuildSeries(A(100), samples)
	if len(points) != 2 {
		t.Fatalf("len = %d, want 2", len(points))
	}
}
