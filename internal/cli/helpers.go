package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/Davincible/galois/internal/validation"
	"github.com/Davincible/galois/pkg/config"
	"github.com/Davincible/galois/pkg/gf"
	"github.com/Davincible/galois/pkg/storage"
	"github.com/spf13/cobra"
)

// fieldParams is the field selected by flags and configuration
type fieldParams struct {
	prime       uint64
	modulus     []uint64
	searchLimit uint64
}

// resolveParams reads the field flags and falls back to the config file.
func resolveParams(cmd *cobra.Command) (*fieldParams, error) {
	cm, err := config.NewConfigManager()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	preset, _ := cmd.Flags().GetString("preset")
	prime, _ := cmd.Flags().GetUint64("prime")
	modulusFlag, _ := cmd.Flags().GetString("modulus")
	searchLimit, _ := cmd.Flags().GetUint64("search-limit")

	var modulus []uint64
	if modulusFlag != "" {
		modulus, err = validation.ParseDigits(modulusFlag, prime)
		if err != nil {
			return nil, fmt.Errorf("invalid modulus: %w", err)
		}
	}

	p, m, err := cm.ResolveField(preset, prime, modulus)
	if err != nil {
		return nil, err
	}

	if searchLimit == 0 {
		searchLimit = cm.GetConfig().Search.MaxSteps
	}

	return &fieldParams{prime: p, modulus: m, searchLimit: searchLimit}, nil
}

// loadField builds the extension field selected on the command line.
func loadField(cmd *cobra.Command) (*gf.ExtensionField, error) {
	params, err := resolveParams(cmd)
	if err != nil {
		return nil, err
	}

	base, err := gf.NewPrimeField(params.prime)
	if err != nil {
		return nil, err
	}

	slog.Debug("building extension field",
		"prime", params.prime,
		"modulus", gf.RenderPolynomial(params.modulus),
		"search_limit", params.searchLimit)

	field, err := gf.NewExtensionField(base, params.modulus,
		gf.WithSearchLimit(params.searchLimit),
		gf.WithLogger(slog.Default()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build field: %w", err)
	}
	return field, nil
}

// parseElement parses digits from user input into an element of f.
func parseElement(f *gf.ExtensionField, input string) (gf.ExtElement, error) {
	digits, err := validation.ParseDigits(input, f.Characteristic())
	if err != nil {
		return gf.ExtElement{}, err
	}
	if err := validation.ValidateDigits(f.Characteristic(), f.Degree(), digits); err != nil {
		return gf.ExtElement{}, err
	}
	return f.Element(digits...)
}

func wantJSON(cmd *cobra.Command) bool {
	outputJSON, _ := cmd.Flags().GetBool("json")
	return outputJSON
}

func printJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// fieldInfo describes f for JSON output and exported files.
func fieldInfo(f *gf.ExtensionField) storage.FieldInfo {
	return storage.FieldInfo{
		Prime:     f.Characteristic(),
		Modulus:   f.Modulus(),
		Primitive: f.Primitive().Digits(),
		Order:     f.Order(),
	}
}

// zechEntries renders the Zech logarithm table, one entry per exponent.
func zechEntries(f *gf.ExtensionField) []storage.Entry {
	table := f.BuildLogTable()
	entries := make([]storage.Entry, len(table))
	for i, log := range table {
		entries[i] = storage.Entry{Index: uint64(i), Log: log.String()}
	}
	return entries
}

// discreteEntries renders the logarithm of every element in canonical order.
func discreteEntries(f *gf.ExtensionField) []storage.Entry {
	table := f.BuildDiscreteLogTable()
	entries := make([]storage.Entry, 0, table.Len())
	for e := range f.Elements() {
		log, _ := table.Lookup(e)
		entries = append(entries, storage.Entry{
			Index:   e.Encode(),
			Element: e.Polynomial(),
			Log:     log.String(),
		})
	}
	return entries
}

func tableEntries(f *gf.ExtensionField, kind storage.Kind) ([]storage.Entry, error) {
	switch kind {
	case storage.KindZech:
		return zechEntries(f), nil
	case storage.KindDiscrete:
		return discreteEntries(f), nil
	default:
		return nil, fmt.Errorf("unknown table kind '%s' (expected zech or discrete)", kind)
	}
}

// cellWidth is the column width needed for values below n.
func cellWidth(n uint64) int {
	if n == 0 {
		return 1
	}
	return len(strconv.FormatUint(n-1, 10))
}
