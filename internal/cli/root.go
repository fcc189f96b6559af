package cli

import (
	"context"

	"github.com/dmitrijs2005/snippets/internal/app"
	"github.com/dmitrijs2005/snippets/internal/config"
	"github.com/dmitrijs2005/snippets/internal/services"
	"github.com/spf13/cobra"
)

// AppFactory builds the application for a loaded configuration.
type AppFactory func(ctx context.Context, c *config.Config) (*app.App, error)

type runner struct {
	newApp AppFactory
}

// NewRootCommand returns the snippets root command wired to app.New.
func NewRootCommand() *cobra.Command {
	return newRootCommand(app.New)
}

func newRootCommand(newApp AppFactory) *cobra.Command {
	r := &runner{newApp: newApp}

	root := &cobra.Command{
		Use:           "snippets",
		Short:         "Store and retrieve snippets of text",
		Long:          `snippets stores short named text snippets in a database table and lets you fetch them by name, search visible names by substring and list the visible catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		r.newPutCommand(),
		r.newGetCommand(),
		r.newSearchCommand(),
		r.newCatalogCommand(),
	)
	return root
}

// run opens the application for cmd, hands the snippet service to fn and
// logs fn's failure before returning it.
func (r *runner) run(cmd *cobra.Command, fn func(ctx context.Context, svc *services.SnippetService) error) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	a, err := r.newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	logger := a.Logger.With("command", cmd.Name())
	if err := fn(ctx, a.Snippets); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return err
	}
	return nil
}
