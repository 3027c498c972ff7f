package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/Davincible/galois/internal/validation"
	"github.com/Davincible/galois/pkg/config"
	"github.com/Davincible/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewConfigCommand handles the configuration file and field presets
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration and field presets",
		Long: `Inspect and initialise the galois configuration file, and manage named
field presets.

The configuration file is read from $GALOIS_CONFIG, then
$XDG_CONFIG_HOME/galois/config.json, then ~/.config/galois/config.json.`,
		Example: `  # Show the active configuration
  galois config show

  # Write the default configuration to disk
  galois config init

  # List field presets
  galois config presets

  # Save GF(3^2) mod x^2 + 1 as a preset
  galois config presets add gf9b --prime 3 --modulus 1,0,1`,
	}

	cmd.AddCommand(
		newConfigShowCommand(),
		newConfigInitCommand(),
		newConfigPathCommand(),
		newConfigPresetsCommand(),
	)

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the active configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cm.GetConfig())
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return err
			}

			if _, err := os.Stat(cm.Path()); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", cm.Path())
			}

			cm.SetConfig(config.DefaultConfig())
			if err := cm.SaveConfig(); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✓ Configuration written to %s\n", cm.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cm.Path())
			return nil
		},
	}
}

func newConfigPresetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List field presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return err
			}

			presets := cm.ListPresets()
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), presets)
			}

			out := cmd.OutOrStdout()
			cyan := color.New(color.FgCyan, color.Bold)
			def := cm.GetConfig().Defaults.Preset
			for _, p := range presets {
				marker := " "
				if p.Name == def {
					marker = "*"
				}
				fmt.Fprintf(out, "%s ", marker)
				cyan.Fprintf(out, "%-8s", p.Name)
				fmt.Fprintf(out, " p=%-4d %-24s %s", p.Prime, gf.RenderPolynomial(p.Modulus), p.Description)
				if len(p.Tags) > 0 {
					fmt.Fprintf(out, " [%s]", strings.Join(p.Tags, ", "))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.AddCommand(
		newConfigPresetsAddCommand(),
		newConfigPresetsDeleteCommand(),
	)

	return cmd
}

func newConfigPresetsAddCommand() *cobra.Command {
	var (
		description string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add [NAME]",
		Short: "Save --prime and --modulus as a named preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return err
			}

			prime, _ := cmd.Flags().GetUint64("prime")
			modulusFlag, _ := cmd.Flags().GetString("modulus")
			if prime == 0 || modulusFlag == "" {
				return fmt.Errorf("--prime and --modulus are required")
			}
			modulus, err := validation.ParseDigits(modulusFlag, prime)
			if err != nil {
				return fmt.Errorf("invalid modulus: %w", err)
			}

			preset := &config.FieldPreset{
				Name:        args[0],
				Description: description,
				Prime:       prime,
				Modulus:     modulus,
				Tags:        tags,
			}
			if err := cm.AddPreset(preset); err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(),
				"✓ Preset '%s' saved: GF(%d) mod %s\n", preset.Name, prime, gf.RenderPolynomial(modulus))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Preset description")
	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Tags for organization")

	return cmd
}

func newConfigPresetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [NAME]",
		Short: "Delete a user-defined preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cm, err := config.NewConfigManager()
			if err != nil {
				return err
			}
			if err := cm.DeletePreset(args[0]); err != nil {
				return err
			}
			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "✓ Preset '%s' deleted\n", args[0])
			return nil
		},
	}
}
