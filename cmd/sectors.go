package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Inspect and extend the sector vocabulary",
}

var sectorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sector names, built-in and custom",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		for _, name := range env.Catalog.SectorNames() {
			fmt.Println(name)
		}
		return nil
	},
}

var sectorsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom sector to the vocabulary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if name == "" {
			return eris.New("sector name must not be empty")
		}

		env, err := initApp(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		if err := env.Store.AddCustomSector(cmd.Context(), name); err != nil {
			return err
		}
		zap.L().Info("custom sector added", zap.String("name", name))
		return nil
	},
}

func init() {
	sectorsCmd.AddCommand(sectorsListCmd)
	sectorsCmd.AddCommand(sectorsAddCmd)
	rootCmd.AddCommand(sectorsCmd)
}
