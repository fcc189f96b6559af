package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/common"
	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/spf13/cobra"
)

const notFoundMessage = "404 Error: Snippet Not Found"

func (r *runner) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Retrieve a snippet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *services.SnippetService) error {
				snippet, err := svc.Get(ctx, args[0])
				if errors.Is(err, common.ErrNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), notFoundMessage)
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Retrieved snippet: %q\n", snippet.Message)
				return nil
			})
		},
	}
}
