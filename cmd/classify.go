package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <name-or-email>",
	Short: "Classify a single company name or email address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		result := env.Orchestrator.Classify(cmd.Context(), args[0])

		zap.L().Info("classified",
			zap.String("input", result.Input),
			zap.String("sector", result.Sector),
			zap.String("source", string(result.Source)),
		)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return eris.Wrap(err, "encode result")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
