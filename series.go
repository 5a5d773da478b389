package eggworth

import "github.com/etnz/eggworth/period"

// PriceSample pairs a period with the per-egg price observed then.
type PriceSample struct {
	Period    period.Period `json:"period"`
	UnitPrice Amount        `json:"price"`
}

// WorthPoint is one chartable point: what an income was worth in eggs at a
// past price.
type WorthPoint struct {
	Period    period.Period `json:"period"`
	UnitPrice Amount        `json:"price"`
	Eggs      Count         `json:"eggs"`
}

// BuildSeries replays income against each historical price sample and
// returns the dual price/egg-count series, in the samples' order.
//
// The mapping preserves order and length: duplicate periods are retained,
// and an empty input yields an empty series.
func BuildSeries(income Amount, samples []PriceSample) []WorthPoint {
	points := make([]WorthPoint, 0, len(samples))
	for _, s := range samples {
		// Samples hold positive prices by construction, so the conversion
		// cannot fail; a zero count stands in if it somehow does.
		eggs, _ := EggsFor(income, s.UnitPrice)
		points = append(points, WorthPoint{Period: s.Period, UnitPrice: s.UnitPrice, Eggs: eggs})
	}
	return points
}
