// Package plotter runs the whole read, difference and draw pipeline once.
package plotter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/penwyp/go-gap-plot/internal/config"
	"github.com/penwyp/go-gap-plot/internal/core/axis"
	"github.com/penwyp/go-gap-plot/internal/core/model"
	"github.com/penwyp/go-gap-plot/internal/core/series"
	"github.com/penwyp/go-gap-plot/internal/data/parser"
	"github.com/penwyp/go-gap-plot/internal/presentation/chart"
	"github.com/penwyp/go-gap-plot/internal/presentation/formatter"
	"github.com/penwyp/go-gap-plot/internal/util"
)

// Result is everything computed by one run.
type Result struct {
	Series model.Series
	Points []model.DiffPoint
	Plan   model.AxisPlan
}

type Plotter struct {
	config   *config.Config
	unit     model.GapUnit
	parser   *parser.Parser
	renderer *chart.Renderer
	out      io.Writer
}

// New validates cfg and prepares a Plotter. Summary output goes to out.
func New(cfg *config.Config, out io.Writer) (*Plotter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	unit, err := cfg.GapUnit()
	if err != nil {
		return nil, err
	}
	return &Plotter{
		config:   cfg,
		unit:     unit,
		parser:   parser.NewParser(cfg.Year),
		renderer: chart.NewRenderer(cfg.Width, cfg.Height, cfg.Caption),
		out:      out,
	}, nil
}

// Run executes the pipeline. The first failing stage aborts the run.
func (p *Plotter) Run() (*Result, error) {
	startTime := time.Now()
	util.LogInfof("Plotting date gaps from %s", p.config.Input)

	// Phase 1: Load and parse
	phaseStart := time.Now()
	dates, err := p.parser.ParseFile(p.config.Input)
	if err != nil {
		return nil, err
	}
	util.LogDebugf("Phase 1 - Parse duration: %v, %d dates", time.Since(phaseStart), len(dates))
	if i, ok := series.SuspectRollover(dates); ok {
		util.LogWarn("Dates jump back by months; input may span a year boundary but every date uses one year",
			util.Field{Key: "date_index", Value: i},
			util.Field{Key: "previous", Value: dates[i-1].Format(time.DateTime)},
			util.Field{Key: "date", Value: dates[i].Format(time.DateTime)},
			util.Field{Key: "year", Value: p.config.Year})
	}

	// Phase 2: Sort and difference
	phaseStart = time.Now()
	s, points, err := series.Build(dates)
	if err != nil {
		return nil, err
	}
	util.LogDebugf("Phase 2 - Diff duration: %v, %d points", time.Since(phaseStart), len(points))
	if n := series.ZeroGaps(points); n > 0 {
		util.LogWarnf("%d duplicate timestamps produce zero-length gaps", n)
	}

	// Phase 3: Axis planning
	plan := axis.Plan(s, points, p.unit)
	util.LogDebugf("Phase 3 - Axis plan: x=[%v, %v] y=[%v, %v] %s ticks=%d first_tick=%v",
		plan.XMin, plan.XMax, plan.YMin, plan.YMax, plan.Granularity, len(plan.Ticks), plan.FirstTick)

	// Phase 4: Encode every artifact before writing any of them
	phaseStart = time.Now()
	image, err := p.renderer.Encode(plan, points)
	if err != nil {
		return nil, err
	}
	var dump []byte
	if p.config.DumpPath != "" {
		if dump, err = formatter.NewJSONFormatter().Encode(s, points, plan); err != nil {
			return nil, err
		}
	}
	util.LogDebugf("Phase 4 - Render duration: %v", time.Since(phaseStart))

	// Phase 5: Write
	if err := chart.WriteImage(p.config.Output, image); err != nil {
		return nil, err
	}
	if dump != nil {
		if err := formatter.WriteDump(p.config.DumpPath, dump); err != nil {
			if rmErr := os.Remove(p.config.Output); rmErr != nil {
				util.LogWarnf("Failed to remove %s after dump error: %v", p.config.Output, rmErr)
			}
			return nil, err
		}
		util.LogInfof("Dump written to %s", p.config.DumpPath)
	}

	result := &Result{Series: s, Points: points, Plan: plan}

	if p.config.Summary {
		if err := formatter.NewSummaryFormatter(p.out, util.TerminalWidth()).Format(s, points, plan); err != nil {
			return nil, fmt.Errorf("writing summary: %w", err)
		}
	}

	util.LogInfof("Plot finished in %v", time.Since(startTime))
	return result, nil
}
