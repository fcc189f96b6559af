package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/snippets/internal/models"
	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/spf13/cobra"
)

func (r *runner) newPutCommand() *cobra.Command {
	var hide, unhide bool

	cmd := &cobra.Command{
		Use:   "put <name> <snippet>",
		Short: "Store a snippet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := models.VisibilityFromFlags(hide, unhide)
			if err != nil {
				return err
			}
			return r.run(cmd, func(ctx context.Context, svc *services.SnippetService) error {
				name, snippet, err := svc.Put(ctx, args[0], args[1], v)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored %q as %q\n", snippet, name)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&hide, "hide", false, "flags snippet as hidden")
	cmd.Flags().BoolVar(&unhide, "unhide", false, "removes hidden flag on snippet")
	cmd.MarkFlagsMutuallyExclusive("hide", "unhide")
	return cmd
}
