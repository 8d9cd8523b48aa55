package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/PTMAbellana/Polegion-sub002/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, storage, and AI provider credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		fmt.Println("Polegion engine diagnostics")
		fmt.Println(strings.Repeat("─", 48))

		// Storage.
		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn, err = store.DefaultDBPath()
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
		}
		fmt.Printf("%-22s %s\n", "Database:", dsn)
		s, err := store.Open(dsn)
		if err != nil {
			fmt.Printf("%-22s ✗ %v\n", "Database open:", err)
		} else {
			fmt.Printf("%-22s ✓\n", "Database open:")
			s.Close()
		}

		// Redis is optional; when unset the limiter and caches run
		// in-process.
		if cfg.Redis.Addr == "" {
			fmt.Printf("%-22s (not configured, using in-process)\n", "Redis:")
		} else {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
			if err := client.Ping(ctx).Err(); err != nil {
				fmt.Printf("%-22s ✗ %v\n", "Redis:", err)
			} else {
				fmt.Printf("%-22s ✓ %s\n", "Redis:", cfg.Redis.Addr)
			}
			client.Close()
		}

		// AI providers, in priority order.
		fmt.Printf("%-22s %s\n", "Provider order:", strings.Join(cfg.AI.Providers, " → "))
		for _, name := range cfg.AI.Providers {
			var hasKey bool
			switch name {
			case "groq":
				hasKey = cfg.AI.Groq.APIKey != ""
			case "gemini":
				hasKey = cfg.AI.Gemini.APIKey != ""
			case "openai":
				hasKey = cfg.AI.OpenAI.APIKey != ""
			case "anthropic":
				hasKey = cfg.AI.Anthropic.APIKey != ""
			case "mock":
				hasKey = true
			}
			mark := "✗ no API key"
			if hasKey {
				mark = "✓ credentials found"
			}
			fmt.Printf("  %-20s %s\n", name+":", mark)
		}
		if !cfg.AI.HasCredentials() {
			fmt.Println("  (no credentials: hints and questions fall back to rules)")
		}

		// Quota.
		fmt.Printf("%-22s %d/day, %d/minute\n", "AI quota:", cfg.Quota.DailyCap, cfg.Quota.PerMinuteCap)
		fmt.Printf("%-22s hints %s (max %d), questions %s\n", "Cache TTLs:",
			cfg.Cache.HintTTL, cfg.Cache.HintMaxSize, cfg.Cache.QuestionTTL)

		return nil
	},
}
