package axis

import (
	"math"

	"github.com/penwyp/go-gap-plot/internal/core/model"
)

// Plan derives axis ranges, tick granularity and aligned tick offsets.
// s must be sorted and points must be non-empty.
func Plan(s model.Series, points []model.DiffPoint, unit model.GapUnit) model.AxisPlan {
	xMax := float64(points[len(points)-1].XOffset)

	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		v := p.Value(unit)
		yMin = math.Min(yMin, v)
		yMax = math.Max(yMax, v)
	}
	pad := unit.Padding()

	g := model.GranularityFor(xMax)
	firstTick := FirstTick(s.First().Unix(), g.Interval())

	return model.AxisPlan{
		XMin:        0,
		XMax:        xMax,
		YMin:        yMin - pad,
		YMax:        yMax + pad,
		Granularity: g,
		FirstTick:   firstTick,
		Ticks:       Ticks(firstTick, float64(g.Interval()), xMax),
		First:       s.First(),
		Unit:        unit,
	}
}

// FirstTick is the offset from epoch to the next interval boundary at or
// after it.
func FirstTick(epoch, interval int64) float64 {
	aligned := int64(math.Ceil(float64(epoch)/float64(interval))) * interval
	return float64(aligned - epoch)
}

// Ticks steps from first by interval while not past xMax.
func Ticks(first, interval, xMax float64) []float64 {
	var ticks []float64
	for tick := first; tick <= xMax; tick += interval {
		ticks = append(ticks, tick)
	}
	return ticks
}
