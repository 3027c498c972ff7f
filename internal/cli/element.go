package cli

import (
	"fmt"

	"github.com/Davincible/galois/pkg/gf"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ElementInfo describes one extension field element
type ElementInfo struct {
	Polynomial string   `json:"polynomial"`
	Digits     []uint64 `json:"digits"`
	Encoding   uint64   `json:"encoding"`
	Inverse    string   `json:"inverse,omitempty"`
	Log        string   `json:"log"`
	Order      uint64   `json:"order,omitempty"`
	Primitive  string   `json:"primitive"`
}

func NewElementCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "element [digits]",
		Short: "Describe an element of the extension field",
		Long: `Show an element's polynomial form, canonical encoding, inverse,
discrete logarithm to the primitive element, and multiplicative order.

Digits are given highest degree first, one per coefficient, separated by
commas or spaces. For p <= 10 they may also be written without separators
(120 is 1,2,0); for larger p a bare number is a single coefficient.`,
		Example: `  # x^2 + 2x in GF(5^3)
  galois element 1,2,0

  # x + 1 in GF(2^3)
  galois element 011 --preset gf8`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadField(cmd)
			if err != nil {
				return err
			}

			e, err := parseElement(f, args[0])
			if err != nil {
				return err
			}

			info, err := describeElement(e)
			if err != nil {
				return err
			}

			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), info)
			}

			out := cmd.OutOrStdout()
			green := color.New(color.FgGreen, color.Bold)
			yellow := color.New(color.FgYellow)

			fmt.Fprintln(out)
			green.Fprintf(out, "Element of %s\n", f)
			fmt.Fprintln(out)
			yellow.Fprint(out, "  Polynomial: ")
			fmt.Fprintln(out, info.Polynomial)
			yellow.Fprint(out, "  Digits:     ")
			fmt.Fprintln(out, info.Digits)
			yellow.Fprint(out, "  Encoding:   ")
			fmt.Fprintln(out, info.Encoding)
			if info.Inverse != "" {
				yellow.Fprint(out, "  Inverse:    ")
				fmt.Fprintln(out, info.Inverse)
			}
			yellow.Fprint(out, "  Log:        ")
			fmt.Fprintf(out, "%s (base %s)\n", info.Log, info.Primitive)
			if info.Order != 0 {
				yellow.Fprint(out, "  Order:      ")
				fmt.Fprintln(out, info.Order)
			}
			return nil
		},
	}

	return cmd
}

func describeElement(e gf.ExtElement) (*ElementInfo, error) {
	info := &ElementInfo{
		Polynomial: e.Polynomial(),
		Digits:     e.Digits(),
		Encoding:   e.Encode(),
		Log:        gf.Log{Infinite: true}.String(),
		Primitive:  e.Field().Primitive().Polynomial(),
	}
	if e.IsZero() {
		return info, nil
	}

	inv, _ := e.Inv()
	info.Inverse = inv.Polynomial()

	k, err := e.PrimitivePower()
	if err != nil {
		return nil, err
	}
	info.Log = gf.Log{Power: k}.String()

	order, err := e.Order()
	if err != nil {
		return nil, err
	}
	info.Order = order

	return info, nil
}
