// Package eggworth converts monetary values into the number of eggs they
// buy, against the current egg price or against decades of historical
// prices. It also carries a fixed roster of the world's wealthiest people
// for comparative display.
package eggworth
