package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/spf13/cobra"
)

func (r *runner) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <string>",
		Short: "Find visible snippet names containing a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *services.SnippetService) error {
				keywords, err := svc.Search(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Snippets with string %q:\n", args[0])
				for _, k := range keywords {
					fmt.Fprintln(out, k)
				}
				return nil
			})
		},
	}
}
