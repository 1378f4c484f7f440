package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/krisis/internal/cli/formatter"
	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/domain"
	"github.com/alexanderramin/krisis/internal/importer"
	"github.com/spf13/cobra"
)

func newPredictCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "predict <file.csv>",
		Short: "Predict triage for every issue row in a CSV file",
		Long: `Reads issue rows from a CSV file (summary/description columns,
case-insensitively aliased), predicts priority, story points and an hour
estimate for each row, and replaces the stored dataset with the new batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := importer.ReadRecords(args[0])
			if err != nil {
				return err
			}

			resp, err := app.Predict.PredictBatch(context.Background(), contract.PredictRequest{
				SourceFile: args[0],
				Records:    records,
			})
			if err != nil {
				return err
			}

			batch := &domain.Batch{
				ID:          resp.BatchID,
				SourceFile:  args[0],
				CreatedAt:   resp.GeneratedAt,
				Predictions: resp.Predictions,
			}
			fmt.Print(formatter.FormatPredictions(batch))

			if outPath != "" {
				if err := importer.WriteResults(outPath, resp.Predictions); err != nil {
					return err
				}
				fmt.Printf("Results written to %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Write results to a CSV file")

	return cmd
}
