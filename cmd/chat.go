package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tomlrepo "github.com/bnema/nova/internal/adapters/repo/toml"
	"github.com/bnema/nova/internal/application"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session (default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app)
		},
	}
}

// runChat runs the task store, the reminder poller, the manifest watcher and
// the assistant loop until the user leaves or the process is interrupted.
func runChat(cmd *cobra.Command, app *app) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.features.LoadInstalled(ctx); err != nil {
		return fmt.Errorf("load features: %w", err)
	}

	session := app.collaborators(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	tasks := application.NewTaskStore(nil, app.logger)
	poller := application.NewReminderPoller(tasks, session.Speaker, nil, app.phrases, app.cfg.Poller.Interval, app.logger)
	watcher := tomlrepo.NewManifestWatcher(app.manifest, app.features.Refresh, app.logger)
	assistant := application.NewAssistant(session, tasks, app.features, app.phrases, nil, app.logger)

	g, gctx := errgroup.WithContext(ctx)
	sessionCtx, endSession := context.WithCancel(gctx)
	defer endSession()

	g.Go(func() error { return tasks.Run(sessionCtx) })
	g.Go(func() error { return poller.Run(sessionCtx) })
	g.Go(func() error { return watcher.Run(sessionCtx) })
	g.Go(func() error {
		defer endSession()
		return assistant.Run(sessionCtx)
	})

	app.logger.Info("session started", "manifest", app.manifest.Path(), "features", len(app.features.Available()))
	if err := g.Wait(); err != nil {
		return fmt.Errorf("chat session: %w", err)
	}
	app.logger.Info("session ended")
	return nil
}
