package eggworth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/eggworth/period"
)

// testFeed serves the given body (or a status error) and returns a Feed
// pointing at it, bypassing the disk cache.
func testFeed(t *testing.T, status int, body string) *Feed {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Feed{BaseURL: srv.URL, Client: srv.Client()}
}

func TestFeedCurrent(t *testing.T) {
	feed := testFeed(t, 200, `[
		{"year": 2024, "period": "M11", "value": 3.00},
		{"year": 2025, "period": "M03", "value": 3.60, "monthLabel": "March 2025"},
		{"year": 2025, "period": "M01", "value": 4.80}
	]`)

	price, asOf, advisory := feed.Current()
	if advisory != "" {
		t.Fatalf("unexpected advisory %q", advisory)
	}
	if asOf != period.MustParse("2025-M03") {
		t.Errorf("asOf = %s, want 2025-M03: max year then max sub-period code", asOf)
	}
	// 3.60 a dozen is 0.30 an egg.
	if !price.Equal(A(0.30)) {
		t.Errorf("price = %s, want 0.3", price)
	}
}

func TestFeedCurrentEnvelope(t *testing.T) {
	feed := testFeed(t, 200, `{"data": [{"year": 2023, "value": 3.00}]}`)

	price, asOf, advisory := feed.Current()
	if advisory != "" {
		t.Fatalf("unexpected advisory %q", advisory)
	}
	if asOf != period.Yearly(2023) {
		t.Errorf("asOf = %s, want 2023", asOf)
	}
	if !price.Equal(A(0.25)) {
		t.Errorf("price = %s, want 0.25", price)
	}
}

func TestFeedCurrentPerEggEnvelope(t *testing.T) {
	// The yearly envelope shape publishes per-egg prices under "price",
	// the shape our own /api/eggprices serves. No division by 12.
	feed := testFeed(t, 200, `{"data": [
		{"year": 2020, "price": 0.23},
		{"year": 2023, "price": 0.25}
	]}`)

	price, asOf, advisory := feed.Current()
	if advisory != "" {
		t.Fatalf("unexpected advisory %q", advisory)
	}
	if asOf != period.Yearly(2023) {
		t.Errorf("asOf = %s, want 2023", asOf)
	}
	if !price.Equal(A(0.25)) {
		t.Errorf("price = %s, want 0.25: per-egg prices must not be divided", price)
	}
}

func TestFeedHistoricalPerEggEnvelope(t *testing.T) {
	feed := testFeed(t, 200, `{"data": [
		{"year": 1950, "price": 0.06},
		{"year": 2023, "price": 0.25}
	]}`)

	samples, advisory := feed.Historical()
	if advisory != "" {
		t.Fatalf("unexpected advisory %q", advisory)
	}
	if len(samples) != 2 {
		t.Fatalf("len = %d, want 2", len(samples))
	}
	if !samples[0].UnitPrice.Equal(A(0.06)) {
		t.Errorf("1950 price = %s, want 0.06: per-egg prices must not be divided", samples[0].UnitPrice)
	}
	if !samples[1].UnitPrice.Equal(A(0.25)) {
		t.Errorf("2023 price = %s, want 0.25", samples[1].UnitPrice)
	}
}

func TestFeedCurrentStringNumbers(t *testing.T) {
	// The feed sometimes sends numbers as strings.
	feed := testFeed(t, 200, `[{"year": "2023", "period": "M05", "value": "3.270"}]`)

	price, asOf, advisory := feed.Current()
	if advisory != "" {
		t.Fatalf("unexpected advisory %q", advisory)
	}
	if asOf != period.MustParse("2023-M05") {
		t.Errorf("asOf = %s, want 2023-M05", asOf)
	}
	// 3.27 a dozen is 0.2725 an egg.
	if !price.Equal(A(0.2725)) {
		t.Errorf("price = %s, want 0.2725", price)
	}
}

func TestFeedCurrentFallback(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", 500, `oops`},
		{"malformed payload", 200, `{"weird": true}`},
		{"malformed record", 200, `[{"year": 2023, "value": "not a number"}]`},
		{"record not an object", 200, `[42]`},
		{"zero prices only", 200, `[{"year": 2023, "period": "M01", "value": 0}]`},
		{"empty list", 200, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := testFeed(t, tt.status, tt.body)
			price, _, advisory := feed.Current()
			if advisory == "" {
				t.Error("want a non-empty advisory on fallback")
			}
			if !price.Equal(DefaultUnitPrice) {
				t.Errorf("price = %s, want the default %s", price, DefaultUnitPrice)
			}
		})
	}
}

func TestFeedCurrentUnreachable(t *testing.T) {
	feed := &Feed{BaseURL: "http://127.0.0.1:1/api/eggprices", Client: &http.Client{}}
	price, _, advisory := feed.Current()
	if advisory == "" {
		t.Error("want a non-empty advisory when the feed is unreachable")
	}
	if !price.Equal(DefaultUnitPrice) {
		t.Errorf("price = %s, want the default %s", price, DefaultUnitPrice)
	}
}

func TestFeedHistorical(t *testing.T) {
	// 2022 has monthly observations only, 2023 has a published annual
	// average that must win over its months.
	feed := testFeed(t, 200, `[
		{"year": 2023, "period": "M13", "value": 3.00},
		{"year": 2023, "period": "M01", "value": 9.99},
		{"year": 2022, "period": "M01", "value": 2.00},
		{"year": 2022, "period": "M02", "value": 4.00}
	]`)

	samples, advisory := feed.Historical()
	if advisory != "" {
		t.Fatalf("unexpected advisory %q", advisory)
	}
	if len(samples) != 2 {
		t.Fatalf("len = %d, want 2", len(samples))
	}
	if samples[0].Period != period.Yearly(2022) || samples[1].Period != period.Yearly(2023) {
		t.Errorf("series not ascending by year: %v, %v", samples[0].Period, samples[1].Period)
	}
	// 2022: mean of 2.00 and 4.00 is 3.00 a dozen, 0.25 an egg.
	if !samples[0].UnitPrice.Equal(A(0.25)) {
		t.Errorf("2022 price = %s, want 0.25", samples[0].UnitPrice)
	}
	// 2023: annual average 3.00 a dozen, 0.25 an egg.
	if !samples[1].UnitPrice.Equal(A(0.25)) {
		t.Errorf("2023 price = %s, want 0.25", samples[1].UnitPrice)
	}
}

func TestFeedHistoricalFallback(t *testing.T) {
	feed := testFeed(t, 503, `down`)

	samples, advisory := feed.Historical()
	if advisory == "" {
		t.Error("want a non-empty advisory on fallback")
	}
	if len(samples) != 16 {
		t.Fatalf("fallback table size = %d, want 16", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if !samples[i-1].Period.Before(samples[i].Period) {
			t.Errorf("fallback table not ascending at %d", i)
		}
	}
	if samples[0].Period != period.Yearly(1950) || !samples[0].UnitPrice.Equal(A(0.06)) {
		t.Errorf("fallback first sample = %v at %s", samples[0].Period, samples[0].UnitPrice)
	}
}
