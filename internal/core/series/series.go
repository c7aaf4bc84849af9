// Package series orders parsed timestamps and derives the gap between
// each adjacent pair.
package series

import (
	"fmt"
	"slices"
	"time"

	"github.com/penwyp/go-gap-plot/internal/core/model"
)

// MinDates is the smallest input that yields at least one gap.
const MinDates = 2

// Validate rejects inputs with fewer than MinDates timestamps.
func Validate(dates []time.Time) error {
	if len(dates) < MinDates {
		return fmt.Errorf("%w: need at least %d dates to compute differences, got %d",
			model.ErrInsufficientData, MinDates, len(dates))
	}
	return nil
}

// Sort returns an ascending copy of dates. Equal instants keep file order.
func Sort(dates []time.Time) model.Series {
	sorted := slices.Clone(dates)
	slices.SortStableFunc(sorted, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return model.Series(sorted)
}

// Diff computes one point per adjacent pair of an ascending series.
func Diff(s model.Series) []model.DiffPoint {
	if len(s) < MinDates {
		return nil
	}
	first := s.First().Unix()
	points := make([]model.DiffPoint, 0, len(s)-1)
	for i := 1; i < len(s); i++ {
		points = append(points, model.DiffPoint{
			XOffset: s[i].Unix() - first,
			Gap:     s[i].Sub(s[i-1]),
		})
	}
	return points
}

// Build validates, sorts and differences dates. dates is left untouched.
func Build(dates []time.Time) (model.Series, []model.DiffPoint, error) {
	if err := Validate(dates); err != nil {
		return nil, nil, err
	}
	s := Sort(dates)
	return s, Diff(s), nil
}

// RolloverThreshold is how far back, in file order, a date must jump before
// it looks like the input crossed into a new year.
const RolloverThreshold = 180 * 24 * time.Hour

// SuspectRollover returns the index of the first date that is more than
// RolloverThreshold earlier than the date before it in file order.
func SuspectRollover(dates []time.Time) (int, bool) {
	for i := 1; i < len(dates); i++ {
		if dates[i-1].Sub(dates[i]) > RolloverThreshold {
			return i, true
		}
	}
	return 0, false
}

// ZeroGaps counts points whose timestamp repeats the previous one.
func ZeroGaps(points []model.DiffPoint) int {
	n := 0
	for _, p := range points {
		if p.Gap == 0 {
			n++
		}
	}
	return n
}
