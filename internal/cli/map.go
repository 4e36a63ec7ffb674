package cli

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"os/signal"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jsphpl/redirect-mapper/internal/config"
	"github.com/jsphpl/redirect-mapper/internal/input"
	"github.com/jsphpl/redirect-mapper/internal/matcher"
	"github.com/jsphpl/redirect-mapper/internal/output"
	"github.com/jsphpl/redirect-mapper/internal/pathfilter"
	"github.com/jsphpl/redirect-mapper/internal/types"
)

var (
	thresholdFlag    float64
	dropExactFlag    bool
	workersFlag      int
	csvFlag          string
	formatFlag       string
	outputFlag       string
	colorFlag        string
	configFlag       string
	sourceFormatFlag string
	targetFormatFlag string
	includeFlags     []string
	excludeFlags     []string
	progressFlag     bool
	quietFlag        bool
	verboseFlag      bool
)

var mapCmd = &cobra.Command{
	Use:   "map <list1> <list2>",
	Short: "Map every item of list1 to its most similar item in list2",
	Long: `Map every item of the old list (list1) to its most similar item in the
new list (list2).

Each list is a file with one item per line, an XML sitemap, or an HTML page
whose links are used. Use "-" to read a list from standard input.

Exit codes:
  0 - Mapping completed
  1 - Error (bad input, I/O error, interrupted)`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)

	flags := mapCmd.Flags()

	// Matching flags
	flags.Float64VarP(&thresholdFlag, "threshold", "t", config.DefaultThreshold, "Tie window below the best score within which matches are ambiguous")
	flags.BoolVarP(&dropExactFlag, "drop-exact", "d", false, "Omit items that appear verbatim in list2")
	flags.IntVarP(&workersFlag, "workers", "w", 1, "Number of items matched in parallel")

	// Output flags
	flags.StringVarP(&csvFlag, "csv", "c", "", "Write CSV output to `PATH` (same as --format csv -o PATH)")
	flags.StringVar(&formatFlag, "format", "text", "Output format: text, csv, json, compact, nginx, apache")
	flags.StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	flags.StringVar(&colorFlag, "color", "auto", "Color mode: auto, always, never")

	// Input flags
	flags.StringVar(&sourceFormatFlag, "source-format", "", "Format of list1: auto, lines, sitemap, html")
	flags.StringVar(&targetFormatFlag, "target-format", "", "Format of list2: auto, lines, sitemap, html")
	flags.StringSliceVar(&includeFlags, "include", nil, "Only map items whose path matches these globs (repeatable)")
	flags.StringSliceVar(&excludeFlags, "exclude", nil, "Skip items whose path matches these globs (repeatable)")

	// Misc flags
	flags.StringVar(&configFlag, "config", "", "Path to config file")
	flags.BoolVar(&progressFlag, "progress", false, "Show a progress bar on stderr")
	flags.BoolVarP(&quietFlag, "quiet", "q", false, "Only log errors")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Log every fuzzy match")
}

// mapSettings is the merged result of config file values and flags
type mapSettings struct {
	threshold    float64
	dropExact    bool
	workers      int
	format       output.Format
	outputPath   string
	color        string
	delimiter    string
	sourceFormat input.Format
	targetFormat input.Format
	lineOpts     input.LineOptions
	include      []string
	exclude      []string
}

// resolveSettings merges cfg with the flags the user explicitly set
func resolveSettings(cmd *cobra.Command, cfg *config.Config) (*mapSettings, error) {
	flags := cmd.Flags()

	s := &mapSettings{
		threshold:    cfg.Threshold(),
		dropExact:    cfg.DropExact(),
		workers:      cfg.Workers(),
		format:       output.Format(cfg.Output.Format),
		color:        cfg.Output.Color,
		delimiter:    cfg.Output.Delimiter,
		sourceFormat: input.Format(cfg.Input.Format),
		targetFormat: input.Format(cfg.Input.Format),
		lineOpts: input.LineOptions{
			SkipBlank: *cfg.Input.SkipBlank,
			TrimSpace: *cfg.Input.TrimSpace,
		},
		include: cfg.Input.Include,
		exclude: cfg.Input.Exclude,
	}

	if flags.Changed("threshold") {
		s.threshold = thresholdFlag
	}
	if flags.Changed("drop-exact") {
		s.dropExact = dropExactFlag
	}
	if flags.Changed("workers") {
		s.workers = workersFlag
	}
	if flags.Changed("format") {
		s.format = output.Format(formatFlag)
	}
	if flags.Changed("output") {
		s.outputPath = outputFlag
	}
	if flags.Changed("color") {
		s.color = colorFlag
	}
	if flags.Changed("source-format") {
		s.sourceFormat = input.Format(sourceFormatFlag)
	}
	if flags.Changed("target-format") {
		s.targetFormat = input.Format(targetFormatFlag)
	}
	if flags.Changed("include") {
		s.include = includeFlags
	}
	if flags.Changed("exclude") {
		s.exclude = excludeFlags
	}

	if flags.Changed("csv") {
		if flags.Changed("format") && formatFlag != string(output.FormatCSV) {
			return nil, fmt.Errorf("--csv cannot be combined with --format %s", formatFlag)
		}
		if flags.Changed("output") && outputFlag != csvFlag {
			return nil, fmt.Errorf("--csv cannot be combined with --output")
		}
		s.format = output.FormatCSV
		s.outputPath = csvFlag
	}

	if s.workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", s.workers)
	}
	if !output.IsValidFormat(string(s.format)) {
		return nil, fmt.Errorf("unknown output format: %s", s.format)
	}
	switch s.color {
	case "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", s.color)
	}
	for _, f := range []input.Format{s.sourceFormat, s.targetFormat} {
		if f != "" && !input.IsValidFormat(string(f)) {
			return nil, fmt.Errorf("unknown input format: %s", f)
		}
	}
	if err := pathfilter.Validate(s.include); err != nil {
		return nil, err
	}
	if err := pathfilter.Validate(s.exclude); err != nil {
		return nil, err
	}

	return s, nil
}

func runMap(cmd *cobra.Command, args []string) error {
	sourcePath, targetPath := args[0], args[1]
	logger := newLogger(quietFlag, verboseFlag)

	cfg, err := config.Load(configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.ConfigPath() != "" {
		logger.Debug("loaded config", "path", cfg.ConfigPath())
	}

	s, err := resolveSettings(cmd, cfg)
	if err != nil {
		return err
	}

	if sourcePath == input.Stdin && targetPath == input.Stdin {
		return fmt.Errorf("only one list can be read from standard input")
	}

	source, err := input.Load(sourcePath, s.sourceFormat, s.lineOpts)
	if err != nil {
		return fmt.Errorf("failed to load list1: %w", err)
	}
	target, err := input.Load(targetPath, s.targetFormat, s.lineOpts)
	if err != nil {
		return fmt.Errorf("failed to load list2: %w", err)
	}

	filter := pathfilter.New(s.include, s.exclude)
	if !filter.Empty() {
		before := len(source) + len(target)
		if source, err = filter.Apply(source); err != nil {
			return err
		}
		if target, err = filter.Apply(target); err != nil {
			return err
		}
		logger.Debug("applied path filter", "removed", before-len(source)-len(target))
	}

	logger.Info(fmt.Sprintf("%d lines in list1", len(source)))
	logger.Info(fmt.Sprintf("%d lines in list2", len(target)))
	logger.Info("Threshold is " + formatThreshold(s.threshold))

	m, err := matcher.New(target,
		matcher.WithThreshold(s.threshold),
		matcher.WithDropExact(s.dropExact),
		matcher.WithWorkers(s.workers),
		matcher.WithLogger(logger.Named("matcher")),
	)
	if err != nil {
		return fmt.Errorf("cannot match: %w", err)
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	defer stop()

	records := m.MatchParallel(ctx, source)
	if progressFlag && !quietFlag && len(source) > 0 {
		records = withProgress(records, len(source), logOutput)
	}

	run := types.NewRun(sourcePath, targetPath, len(source), len(target), s.threshold, s.dropExact)
	run.Records = records

	renderer := output.NewRenderer(s.format, output.Options{
		ColorEnabled: s.colorEnabled(cmd.OutOrStdout()),
		Delimiter:    s.delimiter,
	})

	if s.outputPath == "" {
		if err := renderer.Render(cmd.OutOrStdout(), run); err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
	} else {
		if err := renderToFile(s.outputPath, renderer, run); err != nil {
			return err
		}
		logger.Info("wrote output", "path", s.outputPath, "format", string(s.format))
	}

	logSummary(logger, run.Summary)
	return nil
}

// renderToFile renders run into path. A file left incomplete by a failed or
// interrupted render is removed.
func renderToFile(path string, renderer output.Renderer, run *types.Run) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	renderErr := renderer.Render(f, run)
	closeErr := f.Close()
	if renderErr != nil {
		os.Remove(path)
		return fmt.Errorf("failed to render output: %w", renderErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to write output file: %w", closeErr)
	}
	return nil
}

// withProgress advances a progress bar as records pass through
func withProgress(records iter.Seq2[types.Record, error], total int, w io.Writer) iter.Seq2[types.Record, error] {
	return func(yield func(types.Record, error) bool) {
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("matching"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()

		for rec, err := range records {
			if err == nil {
				_ = bar.Set(rec.Index + 1)
			}
			if !yield(rec, err) {
				return
			}
		}
	}
}

func logSummary(logger hclog.Logger, s types.Summary) {
	args := []interface{}{
		"total", s.Total,
		"exact", s.Exact,
		"fuzzy", s.Fuzzy,
		"ambiguous", s.Ambiguous,
	}
	if s.Dropped > 0 {
		args = append(args, "dropped", s.Dropped)
	}
	logger.Info("mapping complete", args...)
}

// colorEnabled decides coloring for stdout. Output files are only colored
// on request.
func (s *mapSettings) colorEnabled(stdout io.Writer) bool {
	if s.outputPath != "" {
		return s.color == "always"
	}
	return shouldUseColor(s.color, stdout)
}

// formatThreshold renders a threshold without trailing zeros
func formatThreshold(t float64) string {
	return strconv.FormatFloat(t, 'f', -1, 64)
}

// shouldUseColor reports whether colored output should be written to w
func shouldUseColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
