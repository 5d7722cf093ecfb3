package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/nova/internal/application"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newAskCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <utterance...>",
		Short: "Route a single command; follow-up answers are read from stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, app, strings.Join(args, " "))
		},
	}
}

// runAsk routes one utterance. Reminders set here only live as long as the
// command.
func runAsk(cmd *cobra.Command, app *app, utterance string) error {
	if err := app.features.LoadInstalled(cmd.Context()); err != nil {
		return fmt.Errorf("load features: %w", err)
	}

	session := app.collaborators(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	tasks := application.NewTaskStore(nil, app.logger)
	assistant := application.NewAssistant(session, tasks, app.features, app.phrases, nil, app.logger)

	g, gctx := errgroup.WithContext(cmd.Context())
	askCtx, done := context.WithCancel(gctx)
	defer done()

	g.Go(func() error { return tasks.Run(askCtx) })
	g.Go(func() error {
		defer done()
		out := assistant.Handle(askCtx, utterance)
		app.logger.Debug("routed", "intent", out.Intent)
		return nil
	})

	return g.Wait()
}
