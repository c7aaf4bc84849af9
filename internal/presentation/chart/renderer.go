package chart

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/penwyp/go-gap-plot/internal/core/model"
	"github.com/penwyp/go-gap-plot/internal/util"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	XAxisName     = "Time (since first date)"
	captionSize   = 20
	canvasPadding = 20
	labelArea     = 50
)

// Renderer draws gap charts onto a fixed-size canvas.
type Renderer struct {
	width   int
	height  int
	caption string
}

// NewRenderer creates a Renderer for a width x height canvas.
func NewRenderer(width, height int, caption string) *Renderer {
	return &Renderer{width: width, height: height, caption: caption}
}

// SeriesName is the legend entry for unit.
func SeriesName(unit model.GapUnit) string {
	return fmt.Sprintf("Diff (%s)", unit.Short())
}

// YAxisName describes the gap axis for unit.
func YAxisName(unit model.GapUnit) string {
	return fmt.Sprintf("Difference (%s)", unit)
}

// Build assembles the chart for points laid out by plan.
func (r *Renderer) Build(plan model.AxisPlan, points []model.DiffPoint) gochart.Chart {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.XOffset)
		ys[i] = p.Value(plan.Unit)
	}

	// A series of identical timestamps has no width; widen it by one second.
	xMax := plan.XMax
	if xMax <= plan.XMin {
		xMax = plan.XMin + 1
	}

	mesh := gochart.Style{
		StrokeColor: drawing.ColorFromHex("dddddd"),
		StrokeWidth: 1,
	}

	xAxis := gochart.XAxis{
		Name:           XAxisName,
		Range:          &gochart.ContinuousRange{Min: plan.XMin, Max: xMax},
		GridMajorStyle: mesh,
		Ticks:          XTicks(plan, xMax),
	}

	ch := gochart.Chart{
		Title:      r.caption,
		TitleStyle: gochart.Style{FontSize: captionSize},
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    canvasPadding + labelArea,
				Left:   canvasPadding + labelArea,
				Right:  canvasPadding,
				Bottom: canvasPadding + labelArea,
			},
		},
		XAxis: xAxis,
		YAxis: gochart.YAxis{
			Name:           YAxisName(plan.Unit),
			Range:          &gochart.ContinuousRange{Min: plan.YMin, Max: plan.YMax},
			GridMajorStyle: mesh,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    SeriesName(plan.Unit),
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 2,
				},
			},
		},
	}
	ch.Elements = []gochart.Renderable{
		gochart.Legend(&ch, gochart.Style{StrokeColor: drawing.ColorBlack}),
	}
	return ch
}

// XTicks returns the labelled X ticks: both ends of [plan.XMin, xMax] plus
// every aligned tick strictly inside. go-chart sizes the X range from the
// outermost ticks, so the ends must always be present.
func XTicks(plan model.AxisPlan, xMax float64) []gochart.Tick {
	ticks := make([]gochart.Tick, 0, len(plan.Ticks)+2)
	ticks = append(ticks, gochart.Tick{Value: plan.XMin, Label: plan.Label(plan.XMin)})
	for _, t := range plan.Ticks {
		if t > plan.XMin && t < xMax {
			ticks = append(ticks, gochart.Tick{Value: t, Label: plan.Label(t)})
		}
	}
	return append(ticks, gochart.Tick{Value: xMax, Label: plan.Label(xMax)})
}

// Render encodes the chart as PNG into w.
func (r *Renderer) Render(w io.Writer, plan model.AxisPlan, points []model.DiffPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: no points to draw", model.ErrRender)
	}
	ch := r.Build(plan, points)
	if err := ch.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("%w: %v", model.ErrRender, err)
	}
	return nil
}

// Encode renders the chart to PNG bytes.
func (r *Renderer) Encode(plan model.AxisPlan, points []model.DiffPoint) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, plan, points); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save renders into memory first so a failed render never leaves a file
// behind, then creates or overwrites path.
func (r *Renderer) Save(path string, plan model.AxisPlan, points []model.DiffPoint) error {
	data, err := r.Encode(plan, points)
	if err != nil {
		return err
	}
	if err := WriteImage(path, data); err != nil {
		return err
	}
	util.LogDebugf("Wrote %dx%d chart to %s", r.width, r.height, path)
	return nil
}

// WriteImage creates or overwrites path with encoded image data.
func WriteImage(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", model.ErrIO, path, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("%w: writing %s: %v", model.ErrIO, path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %v", model.ErrIO, path, err)
	}
	return nil
}
