package eggworth

import "github.com/shopspring/decimal"

// WealthEntry is one person on the roster. NetWorth is denominated in
// billions of US dollars, the way wealth rankings publish it.
//
// Rank is supplied by the data source and served as opaque display data:
// it is never recomputed from NetWorth, and the stored order is never
// re-sorted by it.
type WealthEntry struct {
	ID       int             `json:"id"`
	Rank     int             `json:"rank"`
	Name     string          `json:"name"`
	NetWorth decimal.Decimal `json:"netWorth"`
	Company  string          `json:"company"`
	Country  string          `json:"country"`
}

// EggWorth converts the entry's net worth to whole eggs at unitPrice.
func (e WealthEntry) EggWorth(unitPrice Amount) (Count, error) {
	return EggsFor(A(e.NetWorth).Billions(), unitPrice)
}

// Roster is a fixed, ranked list of wealthy individuals.
type Roster struct {
	entries []WealthEntry
}

// NewRoster builds a roster serving the given entries in the given order.
func NewRoster(entries []WealthEntry) *Roster { return &Roster{entries: entries} }

// Len returns the full roster size.
func (r *Roster) Len() int { return len(r.entries) }

// List returns the contiguous window [offset, offset+limit) of the roster
// and the full, unsliced total. A non-positive limit means all remaining
// from offset; an offset past the end yields an empty page, not an error.
func (r *Roster) List(limit, offset int) (page []WealthEntry, total int) {
	total = len(r.entries)
	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []WealthEntry{}, total
	}
	end := total
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return r.entries[offset:end], total
}

// DefaultRoster returns the built-in top-of-the-ranking table.
func DefaultRoster() *Roster {
	nw := func(billions int64) decimal.Decimal { return decimal.NewFromInt(billions) }
	return NewRoster([]WealthEntry{
		{ID: 1, Rank: 1, Name: "Elon Musk", NetWorth: nw(234), Company: "Tesla, SpaceX", Country: "USA"},
		{ID: 2, Rank: 2, Name: "Jeff Bezos", NetWorth: nw(189), Company: "Amazon", Country: "USA"},
		{ID: 3, Rank: 3, Name: "Bernard Arnault", NetWorth: nw(183), Company: "LVMH", Country: "France"},
		{ID: 4, Rank: 4, Name: "Bill Gates", NetWorth: nw(128), Company: "Microsoft", Country: "USA"},
		{ID: 5, Rank: 5, Name: "Warren Buffett", NetWorth: nw(121), Company: "Berkshire Hathaway", Country: "USA"},
		{ID: 6, Rank: 6, Name: "Larry Page", NetWorth: nw(115), Company: "Google", Country: "USA"},
		{ID: 7, Rank: 7, Name: "Sergey Brin", NetWorth: nw(111), Company: "Google", Country: "USA"},
		{ID: 8, Rank: 8, Name: "Larry Ellison", NetWorth: nw(107), Company: "Oracle", Country: "USA"},
		{ID: 9, Rank: 9, Name: "Steve Ballmer", NetWorth: nw(104), Company: "Microsoft", Country: "USA"},
		{ID: 10, Rank: 10, Name: "Mukesh Ambani", NetWorth: nw(97), Company: "Reliance Industries", Country: "India"},
	})
}
