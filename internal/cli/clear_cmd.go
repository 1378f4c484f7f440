package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear the stored prediction batch",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("refusing to clear without confirmation; pass --force")
				}

				var confirmed bool
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title("Clear the stored prediction batch?").
						Description("Chat queries will answer with \"no dataset loaded\" until the next predict run.").
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					return fmt.Errorf("confirming clear: %w", err)
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Datasets.Clear(context.Background()); err != nil {
				return err
			}
			fmt.Println("Dataset cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Clear without confirmation")

	return cmd
}
