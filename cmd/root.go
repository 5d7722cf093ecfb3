package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nova",
		Short:         "Nova: a text and voice command assistant",
		Long:          "nova routes spoken or typed commands to actions: time, weather, web search, sites, reminders, and features it can install into itself.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runChat(cmd, app)
	}
	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.Close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newAskCmd(app),
		newFeaturesCmd(app),
		newSecretCmd(app),
	)

	return rootCmd
}
