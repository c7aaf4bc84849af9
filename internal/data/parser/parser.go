package parser

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/penwyp/go-gap-plot/internal/core/constants"
	"github.com/penwyp/go-gap-plot/internal/core/model"
	"github.com/penwyp/go-gap-plot/internal/util"
)

// Parser turns "<month> <day> <HH:MM:SS>" lines into timestamps of a fixed year.
type Parser struct {
	year int
}

// NewParser creates a Parser that assumes year for every line.
func NewParser(year int) *Parser {
	if year <= 0 {
		year = constants.DefaultYear
	}
	return &Parser{year: year}
}

// Load reads the whole file at path.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		util.LogDebug(fmt.Sprintf("Failed to read file: %s - %v", path, err))
		return "", fmt.Errorf("%w: reading %s: %v", model.ErrIO, path, err)
	}
	return string(data), nil
}

// ParseFile loads path and parses its content.
func (p *Parser) ParseFile(path string) ([]time.Time, error) {
	util.LogDebug(fmt.Sprintf("Start parsing file: %s", path))

	content, err := Load(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(content)
}

// Parse parses every non-blank line in file order. The first malformed line
// aborts the parse and nothing is returned.
func (p *Parser) Parse(content string) ([]time.Time, error) {
	var dates []time.Time
	prefix := strconv.Itoa(p.year) + " "

	lines := strings.Split(content, "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		dt, err := parseLine(prefix + line)
		if err != nil {
			util.LogDebug(fmt.Sprintf("Invalid date on line %d: %q - %v", i+1, line, err))
			return nil, &model.ParseError{Line: i + 1, Text: line, Err: err}
		}
		dates = append(dates, dt)
	}

	util.LogDebug(fmt.Sprintf("Parsed %d dates from %d lines", len(dates), len(lines)))
	return dates, nil
}

// parseLine tries the abbreviated month layout, then the full one. The
// abbreviated layout's error is reported when both fail.
func parseLine(value string) (time.Time, error) {
	dt, err := time.ParseInLocation(constants.InputLayout, value, time.UTC)
	if err == nil {
		return dt, nil
	}
	if long, longErr := time.ParseInLocation(constants.InputLayoutLongMonth, value, time.UTC); longErr == nil {
		return long, nil
	}
	return time.Time{}, err
}
