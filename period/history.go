package period

import (
	"iter"
	"slices"
	"sort"
)

// History stores a chronological series of values, each associated with a
// period. Periods are unique and the series is always sorted.
type History[T float32 | float64 | string] struct {
	periods []Period
	values  []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.periods) }

// Clear removes all items from the history.
func (h *History[T]) Clear() {
	h.periods = h.periods[:0]
	h.values = h.values[:0]
}

// Latest returns the most recent period and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (on Period, value T) {
	last := len(h.periods) - 1
	if last < 0 {
		return Period{}, *new(T)
	}
	return h.periods[last], h.values[last]
}

// chronological is a private implementation to keep the history sorted.
type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.periods[i].Before(s.periods[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.periods[i], s.periods[j] = s.periods[j], s.periods[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history.
//
// An existing value at that period is overwritten: the last data wins.
func (h *History[T]) Append(on Period, v T) *History[T] {
	if i := slices.Index(h.periods, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.periods, h.values = append(h.periods, on), append(h.values, v)
	h.sort()
	return h
}

// Values returns an iterator over all period/value pairs, in chronological
// order.
func (h *History[T]) Values() iter.Seq2[Period, T] {
	return func(yield func(Period, T) bool) {
		for i, on := range h.periods {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'on' and true, or zero value and false.
func (h *History[T]) Get(on Period) (T, bool) {
	if i := slices.Index(h.periods, on); i >= 0 {
		return h.values[i], true
	}
	var zero T
	return zero, false
}
