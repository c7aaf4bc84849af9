package formatter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/penwyp/go-gap-plot/internal/core/axis"
	"github.com/penwyp/go-gap-plot/internal/core/model"
	"github.com/penwyp/go-gap-plot/internal/core/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T, unit model.GapUnit) (model.Series, []model.DiffPoint, model.AxisPlan) {
	t.Helper()
	base := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	s, points, err := series.Build([]time.Time{
		base.Add(3*time.Hour + 30*time.Minute), base, base.Add(time.Hour),
	})
	require.NoError(t, err)
	return s, points, axis.Plan(s, points, unit)
}

func TestSummaryFormatter(t *testing.T) {
	s, points, plan := sample(t, model.Minutes)
	var buf bytes.Buffer

	require.NoError(t, NewSummaryFormatter(&buf, 80).Format(s, points, plan))

	out := buf.String()
	assert.Contains(t, out, "Date Gap Summary")
	assert.Contains(t, out, "Dates:      3")
	assert.Contains(t, out, "From:       2025-01-01 00:00:00")
	assert.Contains(t, out, "To:         2025-01-01 03:30:00")
	assert.Contains(t, out, "Span:       3h 30m 0s")
	assert.Contains(t, out, "Gaps:       2")
	assert.Contains(t, out, "Min gap:    60 min (1h 0m 0s)")
	assert.Contains(t, out, "Mean gap:   105 min (1h 45m 0s)")
	assert.Contains(t, out, "Max gap:    150 min (2h 30m 0s)")
	assert.Contains(t, out, "Ticks:      4 hourly")
	assert.Contains(t, out, "Trend:      ▁█")
}

func TestSummaryFormatterNoPoints(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, NewSummaryFormatter(&buf, 80).Format(nil, nil, model.AxisPlan{}))
	assert.Zero(t, buf.Len())
}

func TestJSONFormatterBuild(t *testing.T) {
	s, points, plan := sample(t, model.Seconds)

	dump := NewJSONFormatter().Build(s, points, plan)

	assert.Equal(t, "seconds", dump.Unit)
	assert.Equal(t, 3, dump.Dates)
	assert.Equal(t, []DumpPoint{
		{XOffset: 3600, GapSeconds: 3600, Value: 3600},
		{XOffset: 12600, GapSeconds: 9000, Value: 9000},
	}, dump.Points)
}

func TestJSONFormatterWrite(t *testing.T) {
	s, points, plan := sample(t, model.Minutes)
	path := filepath.Join(t.TempDir(), "dump.json")

	require.NoError(t, NewJSONFormatter().Write(path, s, points, plan))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]interface{}
	require.NoError(t, sonic.Unmarshal(data, &doc))
	assert.Equal(t, "minutes", doc["unit"])
	axisDoc, ok := doc["axis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "hourly", axisDoc["granularity"])
	assert.Equal(t, 12600.0, axisDoc["x_max"])
}

func TestJSONFormatterWriteUnwritable(t *testing.T) {
	s, points, plan := sample(t, model.Minutes)
	path := filepath.Join(t.TempDir(), "missing", "dump.json")

	err := NewJSONFormatter().Write(path, s, points, plan)

	assert.ErrorIs(t, err, model.ErrIO)
}
