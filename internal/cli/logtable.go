package cli

import (
	"fmt"
	"io"

	"github.com/Davincible/galois/pkg/gf"
	"github.com/Davincible/galois/pkg/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func NewLogTableCommand() *cobra.Command {
	var discrete bool

	cmd := &cobra.Command{
		Use:   "logtable",
		Short: "Print the logarithm table of the extension field",
		Long: `Print the Zech logarithm table: row i holds log(1 + g^i) for the
primitive element g, and the extra first row is log(1 + 0) = 0. Rows where
1 + g^i is zero read Infinity.

With --discrete, print log(e) for every element e in canonical order instead.`,
		Example: `  # Zech logarithms of GF(5^3)
  galois logtable

  # Discrete logarithm of every element of GF(2^3)
  galois logtable --discrete --preset gf8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadField(cmd)
			if err != nil {
				return err
			}

			kind := storage.KindZech
			if discrete {
				kind = storage.KindDiscrete
			}
			entries, err := tableEntries(f, kind)
			if err != nil {
				return err
			}

			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"field":   fieldInfo(f),
					"kind":    kind,
					"entries": entries,
				})
			}

			if discrete {
				printDiscreteTable(cmd.OutOrStdout(), f, entries)
				return nil
			}
			printZechTable(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&discrete, "discrete", false, "Print log(e) per element instead of Zech logarithms")

	return cmd
}

func printZechTable(out io.Writer, entries []storage.Entry) {
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(out, "log table: ")
	fmt.Fprintln(out, "Infinity -> 0")
	for _, e := range entries {
		if e.Log == (gf.Log{Infinite: true}).String() {
			yellow.Fprintf(out, "%3d -> %s\n", e.Index, e.Log)
			continue
		}
		fmt.Fprintf(out, "%3d -> %s\n", e.Index, e.Log)
	}
}

func printDiscreteTable(out io.Writer, f *gf.ExtensionField, entries []storage.Entry) {
	cyan := color.New(color.FgCyan)

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Element))
	}

	fmt.Fprintf(out, "discrete logarithms to base %q\n", f.Primitive().Polynomial())
	for _, e := range entries {
		fmt.Fprintf(out, "%3d  ", e.Index)
		cyan.Fprintf(out, "%-*s", width, e.Element)
		fmt.Fprintf(out, " -> %s\n", e.Log)
	}
}
