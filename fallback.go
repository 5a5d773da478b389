package eggworth

import "github.com/etnz/eggworth/period"

// DefaultUnitPrice is the per-egg price substituted whenever the feed
// cannot supply one. The system always has a usable price.
var DefaultUnitPrice = A(0.25)

// DefaultIncome is the amount converted when the caller gives none.
var DefaultIncome = A(50000)

// fallbackPrices is the fixed yearly table (USD per egg) served when the
// upstream feed is unavailable, spanning 1950 to 2023.
var fallbackPrices = []struct {
	year  int
	price float64
}{
	{1950, 0.06},
	{1955, 0.07},
	{1960, 0.08},
	{1965, 0.09},
	{1970, 0.09},
	{1975, 0.11},
	{1980, 0.12},
	{1985, 0.13},
	{1990, 0.15},
	{1995, 0.16},
	{2000, 0.17},
	{2005, 0.19},
	{2010, 0.21},
	{2015, 0.22},
	{2020, 0.23},
	{2023, 0.25},
}

// FallbackSeries returns the fixed historical table as a fresh slice,
// ascending by year.
func FallbackSeries() []PriceSample {
	samples := make([]PriceSample, 0, len(fallbackPrices))
	for _, p := range fallbackPrices {
		samples = append(samples, PriceSample{
			Period:    period.Yearly(p.year),
			UnitPrice: A(p.price),
		})
	}
	return samples
}
