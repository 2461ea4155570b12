package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadpilot/sector-cli/internal/export"
	"github.com/leadpilot/sector-cli/internal/fetcher"
)

var (
	batchIn  string
	batchOut string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Classify every input in a CSV or XLSX file",
	Long:  "Reads company names or emails from the first column of the input file, classifies each one, and writes results as XLSX or JSON depending on the output extension.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, err := fetcher.ReadInputs(batchIn)
		if err != nil {
			return err
		}
		if len(inputs) == 0 {
			return eris.Errorf("no inputs found in %s", batchIn)
		}

		env, err := initApp(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		zap.L().Info("batch starting", zap.String("file", batchIn), zap.Int("inputs", len(inputs)))

		results, err := env.Runner.Run(cmd.Context(), inputs)
		if err != nil {
			return err
		}

		out := batchOut
		if out == "" {
			out = strings.TrimSuffix(batchIn, filepath.Ext(batchIn)) + "-resultats.xlsx"
		}

		f, err := os.Create(out)
		if err != nil {
			return eris.Wrap(err, "create output file")
		}
		defer f.Close()

		if strings.EqualFold(filepath.Ext(out), ".json") {
			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return eris.Wrap(err, "encode results")
			}
		} else if err := export.WriteXLSX(f, results); err != nil {
			return err
		}

		zap.L().Info("batch complete", zap.String("output", out), zap.Int("results", len(results)))
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchIn, "in", "", "input CSV or XLSX file (required)")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output file, .xlsx or .json (default <in>-resultats.xlsx)")
	_ = batchCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(batchCmd)
}
