package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-gap-plot/internal/core/model"
	"github.com/penwyp/go-gap-plot/internal/util"
)

const labelWidth = 12

// SummaryFormatter prints an aligned overview of one run.
type SummaryFormatter struct {
	writer io.Writer
	width  int
}

// NewSummaryFormatter creates a SummaryFormatter writing to w, fitting the
// sparkline into width columns.
func NewSummaryFormatter(w io.Writer, width int) *SummaryFormatter {
	return &SummaryFormatter{writer: w, width: width}
}

// Format writes the summary for s, its points and plan.
func (f *SummaryFormatter) Format(s model.Series, points []model.DiffPoint, plan model.AxisPlan) error {
	if len(points) == 0 {
		return nil
	}

	minGap, maxGap := points[0].Gap, points[0].Gap
	var total time.Duration
	values := make([]float64, len(points))
	for i, p := range points {
		if p.Gap < minGap {
			minGap = p.Gap
		}
		if p.Gap > maxGap {
			maxGap = p.Gap
		}
		total += p.Gap
		values[i] = p.Value(plan.Unit)
	}
	mean := total / time.Duration(len(points))

	rows := [][2]string{
		{"Dates", strconv.Itoa(len(s))},
		{"From", s.First().Format(time.DateTime)},
		{"To", s.Last().Format(time.DateTime)},
		{"Span", util.FormatDuration(s.Span())},
		{"Gaps", strconv.Itoa(len(points))},
		{"Min gap", f.gap(minGap, plan.Unit)},
		{"Mean gap", f.gap(mean, plan.Unit)},
		{"Max gap", f.gap(maxGap, plan.Unit)},
		{"Ticks", fmt.Sprintf("%d %s", len(plan.Ticks), plan.Granularity)},
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	sb.WriteString("Date Gap Summary\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	for _, row := range rows {
		sb.WriteString(util.PadString(row[0]+":", labelWidth, true))
		sb.WriteString(row[1])
		sb.WriteString("\n")
	}
	if spark := util.Sparkline(values, f.width-labelWidth); spark != "" {
		sb.WriteString(util.PadString("Trend:", labelWidth, true))
		sb.WriteString(spark)
		sb.WriteString("\n")
	}

	_, err := io.WriteString(f.writer, sb.String())
	return err
}

func (f *SummaryFormatter) gap(d time.Duration, unit model.GapUnit) string {
	return fmt.Sprintf("%s %s (%s)", util.FormatFloat(unit.Convert(d)), unit.Short(), util.FormatDuration(d))
}
