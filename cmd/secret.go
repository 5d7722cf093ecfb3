package cmd

import (
	"fmt"

	"github.com/bnema/nova/internal/ports"
	"github.com/spf13/cobra"
)

// secretAliases maps short names to the keys collaborators read.
var secretAliases = map[string]string{
	"weather": ports.SecretWeatherAPIKey,
	"search":  ports.SecretSearchAPIKey,
}

func resolveSecretKey(name string) string {
	if key, ok := secretAliases[name]; ok {
		return key
	}
	return name
}

func newSecretCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage collaborator API keys",
		Long:  "Manage collaborator API keys. Keys may be given in full or as the aliases 'weather' and 'search'.",
	}

	cmd.AddCommand(newSecretSetCmd(app), newSecretGetCmd(app), newSecretRemoveCmd(app))

	return cmd
}

func newSecretSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <key>",
		Short: "Store a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.secretStore.Put(cmd.Context(), resolveSecretKey(args[0]), value)
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.secretStore.Get(cmd.Context(), resolveSecretKey(args[0]))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newSecretRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a secret from every writable backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.secretStore.Delete(cmd.Context(), resolveSecretKey(args[0]))
		},
	}
}
