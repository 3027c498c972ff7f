package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Davincible/galois/internal/validation"
	"github.com/Davincible/galois/pkg/config"
	"github.com/Davincible/galois/pkg/gf"
	"github.com/Davincible/galois/pkg/storage"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// CheckResult reports the outcome of verifying an exported table
type CheckResult struct {
	Path       string `json:"path"`
	Kind       string `json:"kind"`
	Entries    int    `json:"entries"`
	Checksum   bool   `json:"checksum_valid"`
	Recomputed *bool  `json:"recomputed_match,omitempty"`
	Mismatch   string `json:"mismatch,omitempty"`
}

func NewCheckCommand() *cobra.Command {
	var recompute bool

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Verify an exported table file",
		Long: `Verify the BLAKE2b checksum of a JSON table written by 'galois export'.

With --recompute the field is rebuilt from the prime and modulus stored in the
file and every entry is compared against a freshly computed table.`,
		Example: `  # Verify the checksum
  galois check gf125.json

  # Verify the checksum and recompute every entry
  galois check gf125.json --recompute`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.NewTableStorage(args[0])
			table, err := store.Load()
			if err != nil && !errors.Is(err, storage.ErrChecksumMismatch) {
				return err
			}

			result := CheckResult{
				Path:     store.Path(),
				Kind:     string(table.Kind),
				Entries:  len(table.Entries),
				Checksum: err == nil,
			}

			if recompute && result.Checksum {
				cm, cerr := config.NewConfigManager()
				if cerr != nil {
					return fmt.Errorf("failed to load config: %w", cerr)
				}
				limit, _ := cmd.Flags().GetUint64("search-limit")
				if limit == 0 {
					limit = cm.GetConfig().Search.MaxSteps
				}

				match, mismatch, rerr := recomputeTable(table, limit)
				if rerr != nil {
					return rerr
				}
				result.Recomputed = &match
				result.Mismatch = mismatch
			}

			if wantJSON(cmd) {
				if perr := printJSON(cmd.OutOrStdout(), result); perr != nil {
					return perr
				}
			} else {
				printCheckResult(cmd, result)
			}

			if !result.Checksum {
				return err
			}
			if result.Recomputed != nil && !*result.Recomputed {
				return fmt.Errorf("table does not match the recomputed field: %s", result.Mismatch)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&recompute, "recompute", false, "Rebuild the field and compare every entry")

	return cmd
}

func printCheckResult(cmd *cobra.Command, result CheckResult) {
	out := cmd.OutOrStdout()
	green := color.New(color.FgGreen, color.Bold)
	red := color.New(color.FgRed, color.Bold)

	if result.Checksum {
		green.Fprintf(out, "✓ Checksum valid: %s (%d %s entries)\n", result.Path, result.Entries, result.Kind)
	} else {
		red.Fprintf(out, "✗ Checksum mismatch: %s\n", result.Path)
	}
	if result.Recomputed == nil {
		return
	}
	if *result.Recomputed {
		green.Fprintln(out, "✓ Entries match the recomputed table")
	} else {
		red.Fprintf(out, "✗ Entries differ from the recomputed table: %s\n", result.Mismatch)
	}
}

// recomputeTable rebuilds the field described by table and compares entries.
// The stored parameters get the same validation as command-line input.
func recomputeTable(table *storage.TableFile, searchLimit uint64) (bool, string, error) {
	if err := validation.ValidateFieldParams(table.Field.Prime, table.Field.Modulus); err != nil {
		return false, "", fmt.Errorf("invalid field in table file: %w", err)
	}

	base, err := gf.NewPrimeField(table.Field.Prime)
	if err != nil {
		return false, "", err
	}
	f, err := gf.NewExtensionField(base, table.Field.Modulus,
		gf.WithSearchLimit(searchLimit),
		gf.WithLogger(slog.Default()),
	)
	if err != nil {
		return false, "", fmt.Errorf("failed to rebuild field: %w", err)
	}

	primitive := f.Primitive().Digits()
	if fmt.Sprint(primitive) != fmt.Sprint(table.Field.Primitive) {
		return false, fmt.Sprintf("primitive %v, stored %v", primitive, table.Field.Primitive), nil
	}

	entries, err := tableEntries(f, table.Kind)
	if err != nil {
		return false, "", err
	}
	if len(entries) != len(table.Entries) {
		return false, fmt.Sprintf("%d entries, stored %d", len(entries), len(table.Entries)), nil
	}
	for i, e := range entries {
		if e != table.Entries[i] {
			return false, fmt.Sprintf("entry %d is %s, stored %s", e.Index, e.Log, table.Entries[i].Log), nil
		}
	}
	return true, "", nil
}
