package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/dataset"
	"github.com/Temutjin2k/rickshaw-analytics/internal/adapter/http/view"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/export"
	"github.com/Temutjin2k/rickshaw-analytics/internal/service/provider"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the dashboard as static files",
	Long: `Load the dataset once and write one HTML page per tab plus charts.json,
which holds the ECharts option tree of every chart.

Examples:
  rickshaw-dashboard export --out dist
  rickshaw-dashboard export --dataset https://example.com/data.json --out site`,
	RunE: runExport,
}

var (
	exportDir     string
	exportDataset string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "dist", "Output directory")
	exportCmd.Flags().StringVar(&exportDataset, "dataset", "", "Dataset file path or URL (overrides DATASET_SOURCE)")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	if exportDataset != "" {
		cfg.Dataset.Source = exportDataset
	}

	source, err := dataset.New(cfg.Dataset.Source, &http.Client{})
	if err != nil {
		return err
	}

	state := provider.New(source, log).Load(ctx)
	if !state.IsReady() {
		return fmt.Errorf("load dataset %s: %s", source.Name(), state.Message)
	}

	pages, err := view.New(
		view.WithStaticLinks(),
		view.WithTitle(cfg.Dashboard.Title),
		view.WithAssetsHost(cfg.Dashboard.AssetsHost),
	)
	if err != nil {
		return err
	}

	return export.New(pages, log).Export(ctx, state, source.Name(), exportDir)
}
