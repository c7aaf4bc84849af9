package formatter

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-gap-plot/internal/core/model"
)

// DumpPoint is one chart point as written to the JSON dump.
type DumpPoint struct {
	XOffset    int64   `json:"x_offset_seconds"`
	GapSeconds int64   `json:"gap_seconds"`
	Value      float64 `json:"value"`
}

// Dump is the JSON document describing one chart.
type Dump struct {
	Unit   string         `json:"unit"`
	Dates  int            `json:"dates"`
	Points []DumpPoint    `json:"points"`
	Axis   model.AxisPlan `json:"axis"`
}

// JSONFormatter writes the computed chart data as indented JSON.
type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Build converts the run data into its dump form.
func (f *JSONFormatter) Build(s model.Series, points []model.DiffPoint, plan model.AxisPlan) Dump {
	dump := Dump{
		Unit:   plan.Unit.String(),
		Dates:  len(s),
		Points: make([]DumpPoint, 0, len(points)),
		Axis:   plan,
	}
	for _, p := range points {
		dump.Points = append(dump.Points, DumpPoint{
			XOffset:    p.XOffset,
			GapSeconds: int64(p.Gap.Seconds()),
			Value:      p.Value(plan.Unit),
		})
	}
	return dump
}

// Encode returns the dump as indented JSON.
func (f *JSONFormatter) Encode(s model.Series, points []model.DiffPoint, plan model.AxisPlan) ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(f.Build(s, points, plan), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding dump: %w", err)
	}
	return append(data, '\n'), nil
}

// Write creates or overwrites path with the dump.
func (f *JSONFormatter) Write(path string, s model.Series, points []model.DiffPoint, plan model.AxisPlan) error {
	data, err := f.Encode(s, points, plan)
	if err != nil {
		return err
	}
	return WriteDump(path, data)
}

// WriteDump creates or overwrites path with encoded dump data.
func WriteDump(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", model.ErrIO, path, err)
	}
	return nil
}
