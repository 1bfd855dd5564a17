package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rhisto/domain/histogram"
	"rhisto/internal/config"
	"rhisto/internal/errors"
	"rhisto/internal/logging"
	"rhisto/internal/reader"
	"rhisto/internal/render"
)

const version = "0.2.0"

type options struct {
	column     int
	expr       string
	delim      string
	skipHeader bool
	numBins    int
	precision  int
	labels     bool
	graph      bool
	summary    bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rhisto: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rhisto: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "rhisto [flags] [input] [output]",
		Short: "Build a histogram from one column of delimited data",
		Long: `Read delimited tabular data, extract one numeric column, and write a
histogram (bin bounds and counts) to a file or stdout.

Input is read from stdin unless a path is given; .xlsx inputs are read as
Excel workbooks. Instead of a single column, --expr computes each sample
from an arithmetic expression over ?N column references.

Examples:
  rhisto -c 2 -n 20 samples.csv
  cat samples.csv | rhisto -s -d ";"
  rhisto -e "?3 / ?1" trades.csv histo.csv`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input, output string
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			return run(opts, input, output)
		},
	}

	cmd.Flags().IntVarP(&opts.column, "column", "c", cfg.Column, "column index (1-based)")
	cmd.Flags().StringVarP(&opts.expr, "expr", "e", "", "expression over ?N column references")
	cmd.Flags().StringVarP(&opts.delim, "delim", "d", cfg.Delim, "column delimiter")
	cmd.Flags().BoolVarP(&opts.skipHeader, "skip-header", "s", false, "skip the first row")
	cmd.Flags().IntVarP(&opts.numBins, "num-bins", "n", cfg.NumBins, "number of bins")
	cmd.Flags().IntVar(&opts.precision, "precision", cfg.Precision, "decimal places for bin bounds")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "emit bin midpoints instead of bounds")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "render an ASCII bar chart")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "prepend summary statistics")
	cmd.Flags().BoolP("version", "V", false, "version for rhisto")
	cmd.MarkFlagsMutuallyExclusive("column", "expr")

	return cmd
}

func run(opts options, input, output string) error {
	rowFn, err := buildRowFunc(opts)
	if err != nil {
		return err
	}

	values, err := readInput(opts, input, rowFn)
	if err != nil {
		return err
	}
	logging.Default.Info("read %d samples", len(values))

	h, err := histogram.FromValues(values, opts.numBins)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return errors.IOError(fmt.Sprintf("failed to create output file %s", output), err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	renderOpts := render.Options{
		Delim:     opts.delim,
		Precision: opts.precision,
		Labels:    opts.labels,
		Graph:     opts.graph,
	}

	if opts.summary {
		if err := render.WriteSummary(bw, values, renderOpts); err != nil {
			return err
		}
	}
	if err := render.Write(bw, h, renderOpts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return errors.IOError("failed to flush output", err)
	}
	return nil
}

func buildRowFunc(opts options) (reader.RowFunc, error) {
	if opts.expr != "" {
		eval, err := reader.NewExprEvaluator(opts.expr, opts.delim)
		if err != nil {
			return nil, err
		}
		return eval.EvalRow, nil
	}

	parser, err := reader.NewColumnParser(opts.column, opts.delim)
	if err != nil {
		return nil, err
	}
	return parser.ParseRow, nil
}

func readInput(opts options, input string, fn reader.RowFunc) ([]float64, error) {
	sourceOpts := reader.Options{SkipHeader: opts.skipHeader}

	if input != "" && reader.IsWorkbook(input) {
		rows, err := reader.ReadWorkbookRows(input, opts.delim)
		if err != nil {
			return nil, err
		}
		return reader.ValuesFromRows(rows, sourceOpts, fn)
	}

	var r io.Reader = os.Stdin
	if input != "" {
		f, err := os.Open(input)
		if err != nil {
			return nil, errors.IOError(fmt.Sprintf("failed to open input file %s", input), err)
		}
		defer f.Close()
		r = f
	}
	return reader.ReadValues(r, sourceOpts, fn)
}
