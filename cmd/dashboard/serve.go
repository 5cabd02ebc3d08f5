package main

import (
	"github.com/spf13/cobra"

	"github.com/Temutjin2k/rickshaw-analytics/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long: `Start the HTTP server and retrieve the dataset once in the background.

Pages answer 503 with a loading page until the dataset is available, or with
the error panel if the retrieval failed. The dataset is never refetched.`,
	RunE: runServe,
}

var serveDataset string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveDataset, "dataset", "", "Dataset file path or URL (overrides DATASET_SOURCE)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, log, err := setup(ctx)
	if err != nil {
		return err
	}
	if serveDataset != "" {
		cfg.Dataset.Source = serveDataset
	}

	// Creating application
	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		return err
	}

	// Running the application
	if err := application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		return err
	}

	return nil
}
