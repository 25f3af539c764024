package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"gokruskal/adapters/excel"
	"gokruskal/app"
	"gokruskal/domain/kruskal"
	"gokruskal/internal"
	"gokruskal/internal/batch"
	"gokruskal/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gokruskal",
		Short: "Kruskal-Wallis H test with chi-square, F, Beta and Gamma approximations",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newBatchCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var sheet string
	var display bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Run the test on a two-column (.xlsx or .csv) observation file",
		Long: `Run the Kruskal-Wallis H test on an observation file.

The file must carry a header row followed by two columns: the measured value
and its group label (a positive whole number).

Example: gokruskal run observations.csv --display=false --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			path := cfg.Data.InputPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("no input file given (argument or KW_INPUT_PATH)")
			}
			if sheet == "" {
				sheet = cfg.Data.SheetName
			}

			samples, err := excel.NewDataReader(path, sheet).ReadSamples()
			if err != nil {
				return err
			}

			logger := internal.NewDefaultLogger()
			service := app.NewKruskalService(logger, os.Stdout)
			opts := kruskal.Options{Display: display && !asJSON}

			result, err := service.Execute(cmd.Context(), samples, &opts)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for Excel inputs (default from KW_SHEET_NAME)")
	cmd.Flags().BoolVar(&display, "display", true, "Emit the formatted console report")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result bundle as JSON instead of the report")

	return cmd
}

func newBatchCmd() *cobra.Command {
	var sheet string
	var concurrency int64

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Run the test on several observation files concurrently",
		Long: `Run the Kruskal-Wallis H test on several files, each an independent
invocation, bounded by --concurrency.

Example: gokruskal batch a.csv b.csv c.xlsx --concurrency 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if sheet == "" {
				sheet = cfg.Data.SheetName
			}
			if concurrency == 0 {
				concurrency = int64(cfg.Batch.Concurrency)
			}

			jobs := make([]batch.Job, 0, len(args))
			for _, path := range args {
				samples, err := excel.NewDataReader(path, sheet).ReadSamples()
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				jobs = append(jobs, batch.NewJob(path, samples))
			}

			runner := batch.NewRunner(concurrency)
			outcomes := runner.RunAll(cmd.Context(), jobs)

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintf(os.Stderr, "%s: %v\n", o.Job.Name, o.Err)
					continue
				}
				p := o.Result.ChiSquare.PValue
				pStr := fmt.Sprintf("%.6f", p)
				if math.IsNaN(p) {
					pStr = "undefined"
				}
				fmt.Printf("%s: N=%d k=%d H=%.6f chi-square p=%s\n",
					o.Job.Name, o.Result.N, o.Result.K, o.Result.H, pStr)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d runs failed", failed, len(outcomes))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet name for Excel inputs (default from KW_SHEET_NAME)")
	cmd.Flags().Int64Var(&concurrency, "concurrency", 0, "Max concurrent runs (default from KW_BATCH_CONCURRENCY)")

	return cmd
}
