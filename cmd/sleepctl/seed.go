package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/seed"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var (
		start   string
		days    int
		files   int
		rngSeed int64
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write synthetic sleep export files",
		Long:  "Write consecutive synthetic exports of --days nights each, named sleep-<first date>.json.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse(domain.DateLayout, start)
			if err != nil {
				return fmt.Errorf("%w: start %q", domain.ErrInvalidInput, start)
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			rng := rand.New(rand.NewSource(rngSeed))
			for i := 0; i < files; i++ {
				first := from.AddDate(0, 0, i*days)
				data, err := seed.Generate(first, days, rng)
				if err != nil {
					return err
				}
				path := filepath.Join(outDir, "sleep-"+first.Format(domain.DateLayout)+".json")
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "2020-03-09", "First sleep date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 30, "Nights per file")
	cmd.Flags().IntVar(&files, "count", 1, "Number of files")
	cmd.Flags().Int64Var(&rngSeed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")

	return cmd
}
