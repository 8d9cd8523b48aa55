package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PTMAbellana/Polegion-sub002/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "polegion-engine",
	Short: "Adaptive tutoring engine for Polegion",
	Long:  "Polegion adaptive engine — tracks student performance, adjusts geometry difficulty, and gates AI hint/question generation.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (env POLEGION_* overrides)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig reads configuration using the --config flag when set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
