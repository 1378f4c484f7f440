package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/krisis/internal/cli/formatter"
	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask one question about the latest prediction batch",
		Example: `  krisis ask why row 2
  krisis ask priority distribution
  krisis ask top risky`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := app.Chat.Ask(context.Background(), contract.ChatRequest{
				Message: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatChatReply(reply.Text))
			return nil
		},
	}
}
