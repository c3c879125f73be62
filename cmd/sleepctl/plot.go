package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blaisecz/fitbit-sleep/internal/analysis"
	"github.com/blaisecz/fitbit-sleep/internal/chart"
	"github.com/spf13/cobra"
)

func plotCmd(opts *options) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render charts as PNG files",
	}
	cmd.PersistentFlags().StringVarP(&outDir, "out", "o", ".", "Output directory")

	cmd.AddCommand(plotLineCmd(opts, &outDir))
	cmd.AddCommand(plotScatterCmd(opts, &outDir))
	cmd.AddCommand(plotCorrCmd(opts, &outDir))

	return cmd
}

func plotLineCmd(opts *options, outDir *string) *cobra.Command {
	var (
		columns []string
		weekday string
	)

	cmd := &cobra.Command{
		Use:   "line",
		Short: "Plot columns against the sleep date with weekly markers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, preset, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if len(columns) == 0 {
				columns = preset.LineColumns
			}
			if weekday == "" {
				weekday = preset.Weekday
			}
			day, err := analysis.ParseWeekday(weekday)
			if err != nil {
				return err
			}

			png, err := chart.Line(table, columns, day)
			if err != nil {
				return err
			}
			return writeChart(cmd, *outDir, chart.LineFilename(columns), png)
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "Columns to plot (default from config)")
	cmd.Flags().StringVar(&weekday, "weekday", "", "Reference weekday of the markers (default from config)")

	return cmd
}

func plotScatterCmd(opts *options, outDir *string) *cobra.Command {
	var x, y string

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Plot one column against another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, preset, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if x == "" {
				x = preset.Scatter.X
			}
			if y == "" {
				y = preset.Scatter.Y
			}

			png, err := chart.Scatter(table, x, y)
			if err != nil {
				return err
			}
			return writeChart(cmd, *outDir, chart.ScatterFilename(x, y), png)
		},
	}

	cmd.Flags().StringVar(&x, "x", "", "Column on the x axis (default from config)")
	cmd.Flags().StringVar(&y, "y", "", "Column on the y axis (default from config)")

	return cmd
}

func plotCorrCmd(opts *options, outDir *string) *cobra.Command {
	var labels []string

	cmd := &cobra.Command{
		Use:   "corr",
		Short: "Render the correlation heatmap of numeric columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, preset, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if len(labels) == 0 {
				labels = preset.CorrelationLabels
			}

			m, err := analysis.Correlate(table, labels...)
			if err != nil {
				return err
			}
			png, err := chart.Heatmap(m)
			if err != nil {
				return err
			}
			return writeChart(cmd, *outDir, chart.HeatmapFilename, png)
		},
	}

	cmd.Flags().StringSliceVar(&labels, "labels", nil, "Columns in display order (default all numeric)")

	return cmd
}

func writeChart(cmd *cobra.Command, dir, name string, png []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
