package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/eval-pipeline/eval-pipeline/eval/writers"
	"github.com/eval-pipeline/eval-pipeline/recordio"
)

var (
	// CLI flags for the write command
	evaluationPath string // Path to the evaluation result YAML file
	metricsPath    string // Output file for serialized metrics ("" = not written)
	plotsPath      string // Output file for serialized plots ("" = not written)
	logLevel       string // Log verbosity level

	// CLI flags for the inspect command
	inspectKind string // Record kind stored in the inspected file (metrics or plots)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "eval-pipeline",
	Short: "Terminal output stages for evaluation pipelines",
}

// writeCmd loads an evaluation result and runs the metrics-and-plots writer stage
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Serialize an evaluation's metrics and plots and write them to single-shard files",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if evaluationPath == "" {
			logrus.Fatalf("Evaluation input file not provided. Exiting.")
		}

		evaluation, err := LoadEvaluationSpec(evaluationPath)
		if err != nil {
			logrus.Fatalf("Unable to load evaluation: %v", err)
		}

		outputPaths := map[string]string{}
		if metricsPath != "" {
			outputPaths[writers.MetricsKind] = metricsPath
		}
		if plotsPath != "" {
			outputPaths[writers.PlotsKind] = plotsPath
		}

		w := writers.MetricsAndPlotsWriter(outputPaths, nil)
		if _, err := w.Run(context.Background(), evaluation); err != nil {
			logrus.Fatalf("Stage %s failed: %v", w.StageName, err)
		}

		logrus.Infof("Stage %s complete: %d output kind(s) written.", w.StageName, len(outputPaths))
	},
}

// inspectCmd reads a written output file back and prints its records
var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Read a single-shard output file and print its records",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		records, err := recordio.ReadFile(args[0])
		if err != nil {
			logrus.Fatalf("Unable to read %s: %v", args[0], err)
		}
		if err := printRecords(cmd.OutOrStdout(), records, inspectKind); err != nil {
			logrus.Fatalf("Unable to decode %s: %v", args[0], err)
		}
	},
}

// printRecords decodes each payload as the given kind and prints one line
// per record.
func printRecords(out io.Writer, records [][]byte, kind string) error {
	switch kind {
	case writers.MetricsKind, writers.PlotsKind:
	default:
		return fmt.Errorf("unknown record kind %q (want %q or %q)", kind, writers.MetricsKind, writers.PlotsKind)
	}

	for i, payload := range records {
		line, err := decodeRecordLine(payload, kind)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		fmt.Fprintln(out, line)
	}
	fmt.Fprintf(out, "%d %s record(s)\n", len(records), kind)
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	writeCmd.Flags().StringVar(&evaluationPath, "evaluation", "", "Path to the evaluation result YAML file")
	writeCmd.Flags().StringVar(&metricsPath, "metrics-path", "", "Output file for serialized metrics (omit to skip)")
	writeCmd.Flags().StringVar(&plotsPath, "plots-path", "", "Output file for serialized plots (omit to skip)")
	writeCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	inspectCmd.Flags().StringVar(&inspectKind, "kind", "metrics", "Record kind stored in the file (metrics or plots)")

	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(inspectCmd)
}
