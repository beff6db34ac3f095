package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/history"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/logger"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/pid"
	"github.com/Netweb-Technologies/Tyrone-Redfish/internal/telemetry"
)

type telemetryOptions struct {
	all        bool
	categories map[telemetry.Category]*bool

	continuous bool
	interval   int
	count      int

	jsonOutput bool
	exportJSON string
	exportCSV  string
	exportDB   string
}

func newTelemetryCmd() *cobra.Command {
	opts := &telemetryOptions{
		categories: make(map[telemetry.Category]*bool),
	}

	cmd := &cobra.Command{
		Use:   "telemetry [category ...]",
		Short: "Collect hardware telemetry",
		Long: `Collect telemetry from the selected subsystems. Subsystems are
selected with flags or positional category names; with neither, every
subsystem is collected. A subsystem that fails to respond is reported
and skipped; the remaining subsystems still produce records.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTelemetry(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.all, "all", false, "collect every subsystem")
	for _, cat := range telemetry.AllCategories {
		enabled := new(bool)
		opts.categories[cat] = enabled
		f.BoolVar(enabled, string(cat), false, fmt.Sprintf("collect %s telemetry", cat))
	}

	f.BoolVar(&opts.continuous, "continuous", false, "poll repeatedly instead of once")
	f.IntVar(&opts.interval, "interval", 10, "seconds between samples in continuous mode")
	f.IntVar(&opts.count, "count", 0, "stop after this many samples (0 = until interrupted)")

	f.BoolVar(&opts.jsonOutput, "json", false, "print records as JSON instead of text")
	f.StringVar(&opts.exportJSON, "export-json", "", "write collected records to a JSON file")
	f.StringVar(&opts.exportCSV, "export-csv", "", "write collected records to a CSV file")
	f.StringVar(&opts.exportDB, "export-db", "", "write collected records to a SQLite file")

	return cmd
}

func (o *telemetryOptions) selected() []telemetry.Category {
	if o.all {
		return nil
	}

	var cats []telemetry.Category
	for _, cat := range telemetry.AllCategories {
		if *o.categories[cat] {
			cats = append(cats, cat)
		}
	}

	// No category flag means everything.
	return cats
}

func parseCategoryArgs(args []string) ([]telemetry.Category, error) {
	var cats []telemetry.Category
	for _, arg := range args {
		cat, err := telemetry.ParseCategory(arg)
		if err != nil {
			return nil, err
		}
		cats = append(cats, cat)
	}

	return cats, nil
}

func runTelemetry(cmd *cobra.Command, opts *telemetryOptions, args []string) error {
	extra, err := parseCategoryArgs(args)
	if err != nil {
		return err
	}

	cfg, client, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	collector := telemetry.NewCollector(client)

	maxSamples := 1
	if opts.continuous {
		maxSamples = opts.count

		guard, err := pid.Acquire(cfg.Host)
		if err != nil {
			return err
		}
		defer guard.Release()
	}

	sampler, err := telemetry.NewSampler(
		collector,
		time.Duration(opts.interval)*time.Second,
		maxSamples,
	)
	if err != nil {
		return err
	}

	var archive *history.Archive
	if opts.exportDB != "" {
		archive, err = history.Open(opts.exportDB)
		if err != nil {
			return err
		}
		defer archive.Close()
	}

	categories := opts.selected()
	if !opts.all {
		categories = append(categories, extra...)
	}
	out := cmd.OutOrStdout()

	var all []telemetry.Record
	sink := func(sample int, result telemetry.CollectionResult) {
		all = append(all, result.Records...)

		if opts.jsonOutput {
			if encoded, jerr := telemetry.ToJSON(result.Records); jerr == nil {
				fmt.Fprintln(out, string(encoded))
			} else {
				logger.Error().Err(jerr).Msg("JSON rendering failed")
			}
		} else {
			if opts.continuous {
				fmt.Fprintf(out, "\n### Sample %d at %s\n", sample, time.Now().Format(time.RFC3339))
			}
			if rerr := telemetry.RenderText(out, result.Records); rerr != nil {
				logger.Error().Err(rerr).Msg("Text rendering failed")
			}
		}

		if archive != nil {
			if aerr := archive.Record(sample, result.Records); aerr != nil {
				logger.Error().Err(aerr).Msg("Archive write failed")
			}
		}
	}

	if err := sampler.Run(ctx, categories, sink); err != nil {
		return err
	}

	if opts.exportJSON != "" {
		if err := telemetry.WriteJSONFile(opts.exportJSON, all); err != nil {
			return err
		}
		logger.Info().Str("path", opts.exportJSON).Int("records", len(all)).Msg("JSON export written")
	}
	if opts.exportCSV != "" {
		if err := telemetry.WriteCSVFile(opts.exportCSV, all); err != nil {
			return err
		}
		logger.Info().Str("path", opts.exportCSV).Int("records", len(all)).Msg("CSV export written")
	}

	return nil
}
