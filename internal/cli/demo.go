package cli

import (
	"fmt"

	"github.com/Davincible/galois/pkg/gf"
	"github.com/spf13/cobra"
)

func NewDemoCommand() *cobra.Command {
	var element string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through the tables, primitive element, and log table of a field",
		Long: `Print, top to bottom: the addition and multiplication tables of GF(p),
a sample element in polynomial form, the primitive element, the sample's
discrete logarithm, and the Zech logarithm table.

The sample defaults to x^(m-1) + 2x^(m-2), which is x^2 + 2x in GF(5^3).`,
		Example: `  # The default walk-through over GF(5^3) mod x^3 + 3x + 2
  galois demo

  # Same walk-through with another sample element
  galois demo --element 3,0,1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadField(cmd)
			if err != nil {
				return err
			}

			var sample gf.ExtElement
			if element != "" {
				sample, err = parseElement(f, element)
			} else {
				sample, err = f.Element(defaultSample(f)...)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printOpTable(out, f.Base(), "addition table", "+", gf.Element.Add)
			fmt.Fprintln(out)
			printOpTable(out, f.Base(), "multiplication table", "*", gf.Element.Mul)

			g := f.Primitive()
			fmt.Fprintln(out, sample.Polynomial())
			fmt.Fprintf(out, "primitive: %q\n", g.Polynomial())

			if sample.IsZero() {
				fmt.Fprintf(out, "%q = %q ^ %s\n", sample.Polynomial(), g.Polynomial(), gf.Log{Infinite: true})
			} else {
				k, err := sample.PrimitivePower()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%q = %q ^ %d\n", sample.Polynomial(), g.Polynomial(), k)
			}

			printZechTable(out, zechEntries(f))
			return nil
		},
	}

	cmd.Flags().StringVarP(&element, "element", "e", "", "Sample element digits, highest degree first")

	return cmd
}

// defaultSample returns the digits 1, 2 followed by zeros, truncated to the
// field degree.
func defaultSample(f *gf.ExtensionField) []uint64 {
	digits := make([]uint64, f.Degree())
	digits[0] = 1
	if len(digits) > 1 {
		digits[1] = 2 % f.Characteristic()
	}
	return digits
}
