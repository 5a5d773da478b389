package eggworth

import (
	"fmt"

	"github.com/Rhymond/go-money"
)

// Count is a number of whole eggs. A partial egg is not purchasable, so a
// Count is always the floor of a division.
type Count int64

// Magnitude thresholds for the suffixed display forms.
const (
	million  Count = 1_000_000
	billion  Count = 1_000_000_000
	trillion Count = 1_000_000_000_000
)

// countFormatter groups plain integers with thousands separators.
var countFormatter = money.NewFormatter(0, ".", ",", "", "1")

// String renders the count for humans: counts of a million and above use a
// two-decimal magnitude suffix, smaller ones a grouped integer.
//
//	999           -> "999"
//	1_000_000     -> "1.00 Million"
//	2_500_000_000 -> "2.50 Billion"
func (c Count) String() string {
	switch {
	case c >= trillion:
		return fmt.Sprintf("%.2f Trillion", float64(c)/float64(trillion))
	case c >= billion:
		return fmt.Sprintf("%.2f Billion", float64(c)/float64(billion))
	case c >= million:
		return fmt.Sprintf("%.2f Million", float64(c)/float64(million))
	default:
		return countFormatter.Format(int64(c))
	}
}
