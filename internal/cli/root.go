package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/galois/pkg/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRootCommand builds the galois command tree.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "galois",
		Short: "Explore prime and prime-power finite fields",
		Long: `Galois computes in GF(p) and GF(p^m), the extension field built from
polynomials over GF(p) modulo an irreducible polynomial of degree m.

Features:
- Addition and multiplication tables of GF(p)
- Arithmetic on extension field elements
- Primitive element search
- Discrete logarithms and Zech logarithm tables
- Table export with checksums

Fields are chosen with --preset, or with --prime and --modulus together.
The modulus is listed highest degree first: 1,0,3,2 is x^3 + 3x + 2.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			noColor, _ := cmd.Flags().GetBool("no-color")

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))

			if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
				color.NoColor = true
			} else if cm, err := config.NewConfigManager(); err == nil && !cm.GetConfig().UI.UseColor {
				color.NoColor = true
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		NewTablesCommand(),
		NewElementCommand(),
		NewCalcCommand(),
		NewPrimitiveCommand(),
		NewLogTableCommand(),
		NewDemoCommand(),
		NewExportCommand(),
		NewCheckCommand(),
		NewConfigCommand(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("preset", "", "Named field preset (see 'galois config presets')")
	rootCmd.PersistentFlags().Uint64P("prime", "p", 0, "Characteristic p of the base field")
	rootCmd.PersistentFlags().StringP("modulus", "m", "", "Defining polynomial, highest degree first (e.g. 1,0,3,2)")
	rootCmd.PersistentFlags().Uint64("search-limit", 0, "Maximum multiplications for the primitive search (0 = config default)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("galois %s\n", version))

	return rootCmd
}
