package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/krisis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the latest prediction batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			batch, err := app.Datasets.Latest(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPredictions(batch))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show priority counts and batch averages",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Datasets.Summary(context.Background())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatSummary(summary))
			return nil
		},
	}
}
