package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PTMAbellana/Polegion-sub002/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated transition statistics for research export",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn, err = store.DefaultDBPath()
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
		}
		s, err := store.Open(dsn)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.GetResearchStatistics(context.Background())
		if err != nil {
			return fmt.Errorf("query statistics: %w", err)
		}
		if stats.TotalTransitions == 0 {
			fmt.Println("No transitions recorded yet.")
			return nil
		}

		fmt.Println("Transition Statistics")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-20s %d\n", "Transitions:", stats.TotalTransitions)
		fmt.Printf("%-20s %d\n", "Total reward:", stats.TotalReward)
		fmt.Printf("%-20s %.1f%%\n", "Accuracy:", stats.Accuracy)

		fmt.Println()
		fmt.Println("Actions")
		fmt.Println(strings.Repeat("─", 48))
		actions := make([]string, 0, len(stats.ActionCounts))
		for a := range stats.ActionCounts {
			actions = append(actions, a)
		}
		sort.Strings(actions)
		for _, a := range actions {
			fmt.Printf("%-24s %6d\n", a, stats.ActionCounts[a])
		}
		return nil
	},
}
