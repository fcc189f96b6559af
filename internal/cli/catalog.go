package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/spf13/cobra"
)

func (r *runner) newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List all visible snippets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.run(cmd, func(ctx context.Context, svc *services.SnippetService) error {
				items, err := svc.Catalog(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Keywords:")
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				for _, item := range items {
					fmt.Fprintf(w, "%s\t%s\n", item.Keyword, item.Message)
				}
				return w.Flush()
			})
		},
	}
}
