package commands

import (
	"fmt"

	"github.com/penwyp/go-gap-plot/internal/config"
	"github.com/penwyp/go-gap-plot/internal/plotter"
	"github.com/penwyp/go-gap-plot/internal/util"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	// Logging related
	debug     bool
	logFile   string
	logFormat string

	// Configuration file
	configPath string

	// Input/output
	input  string
	output string
	year   int

	// Chart
	unit    string
	width   int
	height  int
	caption string

	// Extra artifacts
	dump    string
	summary bool
}

// NewRootCommand builds the go-gap-plot command.
func NewRootCommand() *cobra.Command {
	cmd, _ := newRootCommand()
	return cmd
}

func newRootCommand() (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "go-gap-plot [flags]",
		Short: "Plot the gaps between consecutive timestamps",
		Long: `go-gap-plot reads one "<Mon> <DD> <HH:MM:SS>" timestamp per line, sorts them,
and draws the time between each consecutive pair as a line chart.

Examples:
  go-gap-plot                                   # dates.txt -> output.png, gaps in minutes
  go-gap-plot --unit seconds                    # 640x480 chart with gaps in seconds
  go-gap-plot -i log.txt -o gaps.png --year 2024
  go-gap-plot --config plot.toml --summary      # settings from TOML, print a summary`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, opts)
		},
	}

	// Input/output
	cmd.Flags().StringVarP(&opts.input, "input", "i", defaults.Input,
		"File with one date per line")
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaults.Output,
		"PNG file to write")
	cmd.Flags().IntVar(&opts.year, "year", defaults.Year,
		"Year assumed for every date")

	// Chart configuration
	cmd.Flags().StringVarP(&opts.unit, "unit", "u", defaults.Unit,
		"Gap unit (seconds, minutes); also selects canvas size and caption")
	cmd.Flags().IntVar(&opts.width, "width", defaults.Width,
		"Canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", defaults.Height,
		"Canvas height in pixels")
	cmd.Flags().StringVar(&opts.caption, "caption", defaults.Caption,
		"Chart caption")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "",
		"TOML file with plot settings; flags override it")

	// Extra artifacts
	cmd.Flags().StringVar(&opts.dump, "dump", "",
		"Also write computed points and axis plan as JSON to this file")
	cmd.Flags().BoolVarP(&opts.summary, "summary", "s", false,
		"Print a gap summary after plotting")

	// System and debugging
	cmd.Flags().BoolVar(&opts.debug, "debug", false,
		"Enable debug logging to stderr")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "",
		"Append logs to this file")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", string(util.FormatText),
		"Log format (text, json)")

	return cmd, opts
}

func runPlot(cmd *cobra.Command, opts *rootOptions) error {
	logLevel := "info"
	if opts.debug {
		logLevel = "debug"
	}
	if err := util.InitLogger(util.LoggerOptions{
		Level:     logLevel,
		File:      opts.logFile,
		Format:    util.ParseLogFormat(opts.logFormat),
		ToConsole: opts.debug,
	}); err != nil {
		return err
	}
	defer util.SetLogger(nil)

	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	p, err := plotter.New(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := p.Run(); err != nil {
		util.LogErrorf("Plot failed: %v", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Plot saved to %s\n", cfg.Output)
	return nil
}

// buildConfig layers defaults, the optional TOML file and explicitly set flags.
func buildConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		if err := config.LoadTOML(cfg, opts.configPath); err != nil {
			return nil, err
		}
		util.LogDebugf("Loaded config from %s", opts.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("unit") {
		cfg.Unit = opts.unit
		if err := cfg.ApplyVariant(); err != nil {
			return nil, err
		}
	}
	if flags.Changed("input") {
		cfg.Input = opts.input
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("year") {
		cfg.Year = opts.year
	}
	if flags.Changed("width") {
		cfg.Width = opts.width
	}
	if flags.Changed("height") {
		cfg.Height = opts.height
	}
	if flags.Changed("caption") {
		cfg.Caption = opts.caption
	}
	if flags.Changed("dump") {
		cfg.DumpPath = opts.dump
	}
	if flags.Changed("summary") {
		cfg.Summary = opts.summary
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
