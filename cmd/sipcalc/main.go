package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sipcalc/investment-calculator/internal/calculation"
	"github.com/sipcalc/investment-calculator/internal/config"
	"github.com/sipcalc/investment-calculator/internal/output"
)

// stderrLogger routes engine logging to stderr so stdout stays clean for
// report output.
type stderrLogger struct {
	l *log.Logger
}

func newStderrLogger() stderrLogger {
	return stderrLogger{l: log.New(os.Stderr, "", log.LstdFlags)}
}

func (s stderrLogger) Debugf(format string, args ...any) { s.l.Printf("DEBUG "+format, args...) }
func (s stderrLogger) Infof(format string, args ...any)  { s.l.Printf("INFO "+format, args...) }
func (s stderrLogger) Warnf(format string, args ...any)  { s.l.Printf("WARN "+format, args...) }
func (s stderrLogger) Errorf(format string, args ...any) { s.l.Printf("ERROR "+format, args...) }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sipcalc",
		Short:         "Project the future value of periodic and one-time investments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newExampleCmd())
	return root
}

func newSimulateCmd() *cobra.Command {
	var (
		inputFile  string
		format     string
		outputFile string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a projection from a YAML state file and render a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			state, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			if verbose {
				engine.Debug = true
				engine.SetLogger(newStderrLogger())
			}

			result, err := engine.Simulate(state)
			if err != nil {
				return err
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)",
					output.ErrUnsupportedFormat, format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			data, err := f.Format(result)
			if err != nil {
				return err
			}
			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputFile, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s report to %s\n", f.Name(), outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "path to YAML state file (required)")
	cmd.Flags().StringVarP(&format, "format", "f", "report", "output format: report, console, csv, json")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log engine details to stderr")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example state file to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			state := config.NewInputParser().CreateExampleState()
			data, err := yaml.Marshal(state)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
