package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	featuresrender "github.com/bnema/nova/internal/adapters/render/features"
	"github.com/bnema/nova/internal/domain"
	"github.com/spf13/cobra"
)

const sourceWidth = 100

func newFeaturesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "features",
		Short: "Manage synthesized features",
	}

	cmd.AddCommand(
		newFeaturesListCmd(app),
		newFeaturesInstallCmd(app),
		newFeaturesRunCmd(app),
		newFeaturesShowCmd(app),
	)

	return cmd
}

func newFeaturesListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.features.LoadInstalled(cmd.Context()); err != nil {
				return fmt.Errorf("load features: %w", err)
			}
			statuses, err := app.features.Statuses(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(statuses)
			}

			rendered, err := app.statusRenderer(statuses, featuresrender.RenderOptions{
				Now:      app.now(),
				Manifest: app.manifest.Path(),
			})
			if err != nil {
				return fmt.Errorf("render features: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newFeaturesInstallCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install [topic...]",
		Short: "Synthesize and install a feature (a random built-in when no topic is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := domain.Normalize(strings.Join(args, " "))

			feature, err := app.features.Improve(cmd.Context(), topic)
			if err != nil {
				return fmt.Errorf("install feature: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "installed %s (sha256 %s)\nrestart nova to use it\n", feature.Name, feature.Checksum[:12])
			return err
		},
	}
}

func newFeaturesRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <name> [args...]",
		Short: "Run an installed feature",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.features.LoadInstalled(cmd.Context()); err != nil {
				return fmt.Errorf("load features: %w", err)
			}

			out, err := app.features.Run(cmd.Context(), domain.FeatureName(args[0]), args[1:])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newFeaturesShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print the source of an installed feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			feature, err := app.manifest.GetByName(cmd.Context(), domain.FeatureName(args[0]))
			if err != nil {
				return err
			}

			rendered, err := app.sourceRenderer(feature, sourceWidth)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
