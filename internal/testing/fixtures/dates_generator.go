package fixtures

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// InputLayout matches the lines go-gap-plot reads.
const InputLayout = "Jan 02 15:04:05"

// TestDataGenerator writes date files for tests.
type TestDataGenerator struct {
	baseDir string
}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator(baseDir string) *TestDataGenerator {
	return &TestDataGenerator{
		baseDir: baseDir,
	}
}

// Lines formats times as input lines, in the given order.
func Lines(times ...time.Time) []string {
	lines := make([]string, len(times))
	for i, t := range times {
		lines[i] = t.Format(InputLayout)
	}
	return lines
}

// Regular returns n times starting at start, step apart.
func Regular(start time.Time, step time.Duration, n int) []time.Time {
	times := make([]time.Time, n)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * step)
	}
	return times
}

// WriteLines writes lines to name under the base directory and returns its path.
func (g *TestDataGenerator) WriteLines(name string, lines ...string) (string, error) {
	path := filepath.Join(g.baseDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}

// WriteTimes writes times as a date file.
func (g *TestDataGenerator) WriteTimes(name string, times ...time.Time) (string, error) {
	return g.WriteLines(name, Lines(times...)...)
}

// MustWriteLines is WriteLines failing t on error.
func MustWriteLines(t testing.TB, dir, name string, lines ...string) string {
	t.Helper()
	path, err := NewTestDataGenerator(dir).WriteLines(name, lines...)
	if err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}
