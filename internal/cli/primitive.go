package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// PrimitiveInfo describes the primitive element of a field
type PrimitiveInfo struct {
	Field      string   `json:"field"`
	Polynomial string   `json:"polynomial"`
	Digits     []uint64 `json:"digits"`
	Order      uint64   `json:"order"`
	Powers     []string `json:"powers,omitempty"`
}

func NewPrimitiveCommand() *cobra.Command {
	var showPowers bool

	cmd := &cobra.Command{
		Use:   "primitive",
		Short: "Find the primitive element of the extension field",
		Long: `Search for the first element, in odometer order starting from 1,
whose powers run through every nonzero element of the field.`,
		Example: `  # Primitive element of GF(5^3)
  galois primitive

  # List every power of the primitive element of GF(2^3)
  galois primitive --powers --preset gf8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadField(cmd)
			if err != nil {
				return err
			}

			g := f.Primitive()
			info := PrimitiveInfo{
				Field:      f.String(),
				Polynomial: g.Polynomial(),
				Digits:     g.Digits(),
				Order:      f.Order() - 1,
			}
			if showPowers {
				x := g
				for k := uint64(1); k <= info.Order; k++ {
					info.Powers = append(info.Powers, x.Polynomial())
					x = x.Mul(g)
				}
			}

			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), info)
			}

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)
			cyan := color.New(color.FgCyan)

			fmt.Fprintf(out, "primitive: %q\n", info.Polynomial)
			fmt.Fprintf(out, "digits:    %v\n", info.Digits)
			green.Fprintf(out, "generates all %d nonzero elements of %s\n", info.Order, info.Field)

			if showPowers {
				fmt.Fprintln(out)
				w := cellWidth(info.Order + 1)
				for i, p := range info.Powers {
					cyan.Fprintf(out, "g^%-*d", w, i+1)
					fmt.Fprintf(out, " = %s\n", p)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showPowers, "powers", false, "List g^1 through g^(p^m - 1)")

	return cmd
}
