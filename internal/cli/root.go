package cli

import (
	"github.com/alexanderramin/krisis/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Predict  service.PredictionService
	Chat     service.ChatService
	Datasets service.DatasetService

	// IsInteractive reports whether stdin is a terminal; set by main.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "krisis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "krisis",
		Short: "Issue triage predictor: priority, effort and hour estimates from issue text",
	}

	root.AddCommand(
		newPredictCmd(app),
		newShowCmd(app),
		newSummaryCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newClearCmd(app),
	)

	return root
}
