package main

import (
	"fmt"

	"github.com/blaisecz/fitbit-sleep/internal/config"
	"github.com/blaisecz/fitbit-sleep/internal/domain"
	"github.com/blaisecz/fitbit-sleep/internal/fitbit"
	"github.com/spf13/cobra"
)

// options are the flags shared by every command that reads exports.
type options struct {
	files          []string
	configPath     string
	discoverStages bool
	verbose        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "sleepctl",
		Short:         "sleepctl - Fitbit sleep export toolkit",
		Long:          "Load Fitbit sleep exports into one nightly table and render it.\nRun the api binary for the HTTP dashboard.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&opts.files, "files", "f", nil, "Sleep export files, in load order")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Dashboard YAML with presets and default sources")
	flags.BoolVar(&opts.discoverStages, "discover-stages", false, "Also derive percentages for legacy stages")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Report progress per source")

	// Add subcommands
	rootCmd.AddCommand(tableCmd(opts))
	rootCmd.AddCommand(plotCmd(opts))
	rootCmd.AddCommand(exportCmd(opts))
	rootCmd.AddCommand(seedCmd())

	return rootCmd
}

// dashboard returns the presets of --config, or the defaults.
func (o *options) dashboard() (*config.Dashboard, error) {
	return config.LoadDashboard(o.configPath)
}

// load builds the table from --files, falling back to the sources of --config.
func (o *options) load(cmd *cobra.Command) (*domain.SleepTable, *config.Dashboard, error) {
	preset, err := o.dashboard()
	if err != nil {
		return nil, nil, err
	}

	files := o.files
	if len(files) == 0 {
		files = preset.Sources
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no sleep exports given, use --files or a --config with sources")
	}

	var loaderOpts []fitbit.Option
	if o.discoverStages || preset.DiscoverStages {
		loaderOpts = append(loaderOpts, fitbit.WithDiscoveredStages())
	}
	if o.verbose {
		stderr := cmd.ErrOrStderr()
		loaderOpts = append(loaderOpts, fitbit.WithObserver(func(p fitbit.Progress) {
			fmt.Fprintf(stderr, "[%d/%d] %s: %d records\n", p.Index, p.Total, p.Source, p.Records)
		}))
	}

	report, err := fitbit.NewLoader(loaderOpts...).LoadReport(cmd.Context(), fitbit.FileSources(files...))
	if err != nil {
		return nil, nil, err
	}
	if o.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d nights, %d naps excluded\n", report.Table.Len(), report.Excluded)
	}
	return report.Table, preset, nil
}
