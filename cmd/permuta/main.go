// Package main provides the CLI entry point for permuta-go.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/permuta-go/pkg/permuta"
	"github.com/ukaji3/permuta-go/pkg/permuta/engine"
	"github.com/ukaji3/permuta-go/pkg/permuta/models"
	"github.com/ukaji3/permuta-go/pkg/permuta/output"
)

var (
	outputPath      string
	pretty          bool
	format          string
	separator       string
	precedence      string
	countOnly       bool
	maxCombinations int64
	quiet           bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the root command and resets the flag-bound package
// variables to their defaults.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "permuta [input.xlsx]",
		Short: "Generate product combinations from a workbook specification",
		Long: `permuta-go expands a workbook specification (an ID sheet of option
axes, an optional GENERAL sheet of shared attributes, and override
sheets keyed by axis values) into one flat record per combination and
outputs JSON or CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv")
	rootCmd.Flags().StringVar(&separator, "separator", "-", "String joining axis values into the ID")
	rootCmd.Flags().StringVar(&precedence, "precedence", string(engine.DesignatorOrder),
		"Override conflict resolution: designator_order, sheet_priority")
	rootCmd.Flags().BoolVar(&countOnly, "count-only", false, "Report the combination count without generating")
	rootCmd.Flags().Int64Var(&maxCombinations, "max-combinations", 0, "Abort if the count exceeds this bound (0 = unlimited)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress warnings")

	sampleCmd := &cobra.Command{
		Use:   "sample [output.xlsx]",
		Short: "Write an example workbook demonstrating the expected layout",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSample,
	}
	rootCmd.AddCommand(sampleCmd)

	return rootCmd
}

// loadConfig lets a permuta.toml (or .yaml/.json) in the working
// directory supply defaults for separator, precedence, and format.
// Explicit flags always win over file values.
func loadConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetConfigName("permuta")
	v.AddConfigPath(".")

	for _, key := range []string{"separator", "precedence", "format"} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}

	separator = v.GetString("separator")
	precedence = v.GetString("precedence")
	format = v.GetString("format")
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	if err := loadConfig(cmd); err != nil {
		return err
	}
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}

	mode, err := engine.ParsePrecedence(precedence)
	if err != nil {
		return err
	}
	if format != "json" && format != "csv" {
		return fmt.Errorf("invalid format: %s (must be json or csv)", format)
	}

	tables, err := permuta.ReadTables(inputPath)
	if err != nil {
		return err
	}

	spec, err := engine.Classify(tables)
	if err != nil {
		if errors.Is(err, engine.ErrMissingAxisTable) {
			return fmt.Errorf(`%s has no sheet named "ID": %w`, inputPath, err)
		}
		return err
	}

	diagnose(tables, spec)

	count := spec.Count()
	if countOnly {
		fmt.Println(count)
		return nil
	}
	if maxCombinations > 0 && count > maxCombinations {
		return fmt.Errorf("%d combinations exceed --max-combinations=%d", count, maxCombinations)
	}
	logger.Info("generating combinations", "count", count)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := permuta.Options{Separator: separator, Precedence: mode}
	var records []*models.Record
	err = permuta.Stream(ctx, spec, opts, func(rec *models.Record) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return fmt.Errorf("generation interrupted: %w", err)
	}

	var data []byte
	switch format {
	case "csv":
		data, err = output.ToCSV(records)
	default:
		data, err = output.ToJSON(records, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}

// diagnose surfaces degraded-input warnings the engine itself accepts
// silently: replaced duplicate override sheets, override sheets keyed by
// an undeclared axis, and axes without values.
func diagnose(tables []models.Table, spec *engine.ProductSpec) {
	seen := make(map[string]string) // key column -> sheet name
	for _, t := range tables {
		if t.Name == engine.AxisTableName || t.Name == engine.DefaultsTableName {
			continue
		}
		if t.ColumnCount() == 0 {
			logger.Warn("skipping sheet with no columns", "sheet", t.Name)
			continue
		}
		key := t.Headers[0]
		if prev, ok := seen[key]; ok {
			logger.Warn("override sheet replaced by a later sheet with the same key column",
				"replaced", prev, "by", t.Name, "key", key)
		}
		seen[key] = t.Name
	}

	for _, ot := range spec.Overrides {
		if spec.AxisIndex(ot.KeyColumn) < 0 {
			logger.Warn("override sheet targets an undeclared axis; its data is inert",
				"sheet", seen[ot.KeyColumn], "axis", ot.KeyColumn)
		}
	}

	for _, name := range spec.EmptyAxes() {
		logger.Warn("axis has no values; the result set is empty", "axis", name)
	}
}

func runSample(cmd *cobra.Command, args []string) error {
	path := "permuta_sample.xlsx"
	if len(args) == 1 {
		path = args[0]
	}
	if err := permuta.WriteSample(path); err != nil {
		return err
	}
	logger.Info("wrote sample workbook", "path", path)
	return nil
}
