package eggworth

import (
	"fmt"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/eggworth/period"
	"github.com/shopspring/decimal"
)

// DefaultFeedURL is the upstream price feed address used when none is
// configured.
const DefaultFeedURL = "http://localhost:3000/api/eggprices"

// feedURLEnv selects the upstream price-feed base address.
const feedURLEnv = "EGG_FEED_URL"

// eggsPerDozen converts the raw shape's per-dozen prices to per-egg
// prices. Division by exactly 12 is mandatory.
var eggsPerDozen = decimal.NewFromInt(12)

// Record is one raw observation from the upstream feed, in US dollars.
// The raw array shape prices a dozen eggs under "value"; the yearly
// envelope shape prices a single egg under "price".
type Record struct {
	Year       int     `json:"year"`
	Period     string  `json:"period"`
	Value      float64 `json:"value"`
	MonthLabel string  `json:"monthLabel,omitempty"`

	// PerEgg reports that Value came from a "price" key and is already
	// per egg. Not part of the wire shape.
	PerEgg bool `json:"-"`
}

// On returns the orderable key of the observation.
func (r Record) On() period.Period {
	if r.Period == "" {
		return period.Yearly(r.Year)
	}
	return period.New(r.Year, r.Period)
}

// unitPrice returns the observation's per-egg price.
func (r Record) unitPrice() decimal.Decimal {
	v := decimal.NewFromFloat(r.Value)
	if r.PerEgg {
		return v
	}
	return v.Div(eggsPerDozen)
}

// Feed fetches egg prices from the upstream provider. Every failure is
// recovered locally: callers always get a usable price, plus a non-empty
// advisory string when the built-in fallback had to stand in.
type Feed struct {
	BaseURL string       // upstream address, DefaultFeedURL when empty
	Client  *http.Client // nil means a daily disk-cached client
}

// NewFeed returns a Feed configured from the environment.
func NewFeed() *Feed {
	return &Feed{BaseURL: os.Getenv(feedURLEnv)}
}

func (f *Feed) url() string {
	if f.BaseURL == "" {
		return DefaultFeedURL
	}
	return f.BaseURL
}

func (f *Feed) client() *http.Client {
	if f.Client == nil {
		return daily()
	}
	return f.Client
}

// Raw fetches and validates the upstream observations, untransformed:
// values stay in the unit the feed sent them in. The payload is never
// trusted silently; a record that fails shape validation fails the whole
// fetch.
func (f *Feed) Raw() ([]Record, error) {
	var payload any
	if err := jwget(f.client(), f.url(), &payload); err != nil {
		return nil, err
	}

	list, ok := payload.([]any)
	if !ok {
		// Some deployments wrap the observations in a data envelope.
		jval, err := jsonpath.Get("$.data", payload)
		if err != nil {
			return nil, fmt.Errorf("unexpected feed payload shape: %w", err)
		}
		if list, ok = jval.([]any); !ok {
			return nil, fmt.Errorf("unexpected feed payload shape: data is %T, not a list", jval)
		}
	}

	records := make([]Record, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("feed record %d is %T, not an object", i, item)
		}
		rec, err := parseRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("feed record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// parseRecord validates one untyped upstream observation. The feed is
// sloppy about numbers and sometimes sends them as strings.
func parseRecord(obj map[string]any) (Record, error) {
	year, err := asFloat(obj["year"])
	if err != nil {
		return Record{}, fmt.Errorf("bad year: %w", err)
	}
	perEgg := false
	value, err := asFloat(obj["value"])
	if err != nil {
		// The yearly envelope shape prices a single egg under "price",
		// already divided by twelve.
		if value, err = asFloat(obj["price"]); err != nil {
			return Record{}, fmt.Errorf("bad value: %w", err)
		}
		perEgg = true
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Record{}, fmt.Errorf("bad value: not finite")
	}

	rec := Record{Year: int(year), Value: value, PerEgg: perEgg}
	if code, ok := obj["period"].(string); ok {
		rec.Period = code
	}
	if label, ok := obj["monthLabel"].(string); ok {
		rec.MonthLabel = label
	}
	if rec.Year <= 0 {
		return Record{}, fmt.Errorf("bad year: %v", year)
	}
	return rec, nil
}

// asFloat reads an upstream number that may arrive as a float or a string.
func asFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q", t)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("not a number but %T", v)
	}
}

// Current returns the per-egg price of the most recent observation: the
// maximum year, ties broken by the maximum sub-period code.
//
// On any fetch failure, malformed payload, or absent/zero price it returns
// DefaultUnitPrice and a non-empty advisory; never an error.
func (f *Feed) Current() (price Amount, asOf period.Period, advisory string) {
	records, err := f.Raw()
	if err != nil {
		return DefaultUnitPrice, period.Period{}, fmt.Sprintf("using default price: %v", err)
	}

	var best Record
	found := false
	for _, r := range records {
		if r.Value <= 0 {
			continue
		}
		if !found || r.On().After(best.On()) {
			best, found = r, true
		}
	}
	if !found {
		return DefaultUnitPrice, period.Period{}, "using default price: feed has no usable observation"
	}

	return A(best.unitPrice()), best.On(), ""
}

// Historical returns the per-egg price series in a yearly shape, ascending
// by year. Live observations are collapsed per year, preferring the
// published annual average over a mean of the months. When the feed cannot
// supply a series, the fixed fallback table is returned with an advisory.
func (f *Feed) Historical() (samples []PriceSample, advisory string) {
	records, err := f.Raw()
	if err != nil {
		return FallbackSeries(), fmt.Sprintf("using fallback table: %v", err)
	}
	if len(records) == 0 {
		return FallbackSeries(), "using fallback table: feed is empty"
	}

	annual := make(map[int]decimal.Decimal)
	sums := make(map[int]decimal.Decimal)
	counts := make(map[int]int)
	for _, r := range records {
		if r.Value <= 0 || r.Year <= 0 {
			continue
		}
		if r.Period == period.Annual || r.Period == "" {
			annual[r.Year] = r.unitPrice()
			continue
		}
		sums[r.Year] = sums[r.Year].Add(r.unitPrice())
		counts[r.Year]++
	}

	var h period.History[float64]
	for year, v := range annual {
		h.Append(period.Yearly(year), v.InexactFloat64())
	}
	for year, sum := range sums {
		if _, done := annual[year]; done {
			continue
		}
		mean := sum.Div(decimal.NewFromInt(int64(counts[year])))
		h.Append(period.Yearly(year), mean.InexactFloat64())
	}
	if h.Len() == 0 {
		return FallbackSeries(), "using fallback table: feed has no usable observation"
	}

	for on, perEgg := range h.Values() {
		samples = append(samples, PriceSample{
			Period:    on,
			UnitPrice: A(perEgg),
		})
	}
	return samples, ""
}
