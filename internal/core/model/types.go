package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-gap-plot/internal/core/constants"
)

// Series is the ascending list of parsed timestamps.
type Series []time.Time

// First returns the earliest timestamp. The series must not be empty.
func (s Series) First() time.Time { return s[0] }

// Last returns the latest timestamp. The series must not be empty.
func (s Series) Last() time.Time { return s[len(s)-1] }

// Span returns the whole covered duration.
func (s Series) Span() time.Duration {
	if len(s) == 0 {
		return 0
	}
	return s.Last().Sub(s.First())
}

// DiffPoint is one plotted point: the later timestamp of an adjacent pair,
// placed at its offset from the first timestamp.
type DiffPoint struct {
	XOffset int64         `json:"x_offset_seconds"`
	Gap     time.Duration `json:"gap"`
}

// Value returns the gap expressed in unit.
func (p DiffPoint) Value(unit GapUnit) float64 {
	return unit.Convert(p.Gap)
}

// GapUnit selects how gaps are expressed on the Y axis.
type GapUnit int

const (
	Seconds GapUnit = iota
	Minutes
)

// ParseGapUnit accepts "seconds"/"s"/"sec" and "minutes"/"m"/"min".
func ParseGapUnit(s string) (GapUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "seconds", "second", "sec", "s":
		return Seconds, nil
	case "minutes", "minute", "min", "m":
		return Minutes, nil
	default:
		return 0, fmt.Errorf("unknown gap unit %q (want seconds or minutes)", s)
	}
}

func (u GapUnit) String() string {
	if u == Minutes {
		return "minutes"
	}
	return "seconds"
}

// Short is the abbreviation used in the legend.
func (u GapUnit) Short() string {
	if u == Minutes {
		return "min"
	}
	return "s"
}

// Padding is added above and below the data on the Y axis so equal gaps
// never collapse the axis to zero height.
func (u GapUnit) Padding() float64 {
	if u == Minutes {
		return 0.1
	}
	return 1
}

// Convert expresses d in this unit. Seconds are whole, minutes fractional.
func (u GapUnit) Convert(d time.Duration) float64 {
	secs := int64(d / time.Second)
	if u == Minutes {
		return float64(secs) / 60.0
	}
	return float64(secs)
}

// Granularity is the spacing of major X ticks, chosen from the total span.
type Granularity int

const (
	Hourly Granularity = iota
	Daily
)

// GranularityFor returns Hourly for spans under one day, Daily otherwise.
func GranularityFor(spanSeconds float64) Granularity {
	if spanSeconds < float64(constants.DaySeconds) {
		return Hourly
	}
	return Daily
}

func (g Granularity) String() string {
	if g == Daily {
		return "daily"
	}
	return "hourly"
}

// Interval is the tick step in seconds.
func (g Granularity) Interval() int64 {
	if g == Daily {
		return constants.DaySeconds
	}
	return constants.HourSeconds
}

// Layout is the time layout used for tick labels.
func (g Granularity) Layout() string {
	if g == Daily {
		return constants.DailyLabelLayout
	}
	return constants.HourlyLabelLayout
}

// Format labels the instant x seconds after first.
func (g Granularity) Format(first time.Time, x float64) string {
	return first.Add(time.Duration(int64(x)) * time.Second).UTC().Format(g.Layout())
}

// AxisPlan holds the axis ranges and tick positions derived for one chart.
type AxisPlan struct {
	XMin        float64     `json:"x_min"`
	XMax        float64     `json:"x_max"`
	YMin        float64     `json:"y_min"`
	YMax        float64     `json:"y_max"`
	Granularity Granularity `json:"granularity"`
	FirstTick   float64     `json:"first_tick"`
	Ticks       []float64   `json:"ticks"`
	First       time.Time   `json:"first"`
	Unit        GapUnit     `json:"unit"`
}

// Label renders the X axis label for offset x.
func (p AxisPlan) Label(x float64) string {
	return p.Granularity.Format(p.First, x)
}

// MarshalText lets the enums show up by name in JSON dumps.
func (g Granularity) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

func (u GapUnit) MarshalText() ([]byte, error) { return []byte(u.String()), nil }
