package cli

import (
	"fmt"
	"io"

	"github.com/Davincible/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type opTable struct {
	Prime          uint64     `json:"prime"`
	Addition       [][]uint64 `json:"addition"`
	Multiplication [][]uint64 `json:"multiplication"`
}

func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the addition and multiplication tables of GF(p)",
		Long: `Print the addition and multiplication tables of the base field GF(p).
Row y, column x holds x + y (or x * y).`,
		Example: `  # Tables of GF(5), the base field of the default preset
  galois tables

  # Tables of GF(7)
  galois tables --prime 7 --modulus 1,0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := resolveParams(cmd)
			if err != nil {
				return err
			}

			f, err := gf.NewPrimeField(params.prime)
			if err != nil {
				return err
			}

			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), buildOpTable(f))
			}

			out := cmd.OutOrStdout()
			printOpTable(out, f, "addition table", "+", gf.Element.Add)
			fmt.Fprintln(out)
			printOpTable(out, f, "multiplication table", "*", gf.Element.Mul)
			return nil
		},
	}

	return cmd
}

func buildOpTable(f *gf.PrimeField) opTable {
	elements := f.Elements()
	t := opTable{
		Prime:          f.Order(),
		Addition:       make([][]uint64, len(elements)),
		Multiplication: make([][]uint64, len(elements)),
	}
	for i, y := range elements {
		t.Addition[i] = make([]uint64, len(elements))
		t.Multiplication[i] = make([]uint64, len(elements))
		for j, x := range elements {
			t.Addition[i][j] = x.Add(y).Uint64()
			t.Multiplication[i][j] = x.Mul(y).Uint64()
		}
	}
	return t
}

func printOpTable(out io.Writer, f *gf.PrimeField, title, symbol string, op func(gf.Element, gf.Element) gf.Element) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)
	w := cellWidth(f.Order())

	fmt.Fprintln(out, title)

	yellow.Fprintf(out, "%-*s ", w, symbol)
	for _, x := range f.Elements() {
		cyan.Fprintf(out, "%*s ", w, x)
	}
	fmt.Fprintln(out)

	for _, y := range f.Elements() {
		cyan.Fprintf(out, "%*s ", w, y)
		for _, x := range f.Elements() {
			fmt.Fprintf(out, "%*s ", w, op(x, y))
		}
		fmt.Fprintln(out)
	}
}
