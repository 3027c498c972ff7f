// Package storage writes and reads exported field tables. Every file carries
// a BLAKE2b-256 checksum over its field description and entries.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Format is the on-disk encoding of a table file
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Kind names the table stored in a file
type Kind string

const (
	// KindZech holds log(1 + g^i) for every exponent i.
	KindZech Kind = "zech"
	// KindDiscrete holds log(e) for every element e in canonical order.
	KindDiscrete Kind = "discrete"
)

// ErrChecksumMismatch is returned when a loaded table does not match its checksum.
var ErrChecksumMismatch = errors.New("table checksum mismatch")

// FieldInfo describes the field a table was computed in
type FieldInfo struct {
	Prime     uint64   `json:"prime"`
	Modulus   []uint64 `json:"modulus"`
	Primitive []uint64 `json:"primitive"`
	Order     uint64   `json:"order"`
}

// Entry is one table row
type Entry struct {
	Index   uint64 `json:"index"`
	Element string `json:"element,omitempty"`
	Log     string `json:"log"`
}

// TableFile is the exported representation of a log table
type TableFile struct {
	Field    FieldInfo `json:"field"`
	Kind     Kind      `json:"kind"`
	Entries  []Entry   `json:"entries"`
	Checksum string    `json:"checksum_blake2b"`
}

// Seal computes and stores the checksum.
func (t *TableFile) Seal() error {
	sum, err := t.digest()
	if err != nil {
		return err
	}
	t.Checksum = sum
	return nil
}

// Verify recomputes the checksum and compares it with the stored one.
func (t *TableFile) Verify() error {
	sum, err := t.digest()
	if err != nil {
		return err
	}
	if sum != t.Checksum {
		return fmt.Errorf("%w: stored %s, computed %s", ErrChecksumMismatch, t.Checksum, sum)
	}
	return nil
}

func (t *TableFile) digest() (string, error) {
	payload, err := json.Marshal(struct {
		Field   FieldInfo `json:"field"`
		Kind    Kind      `json:"kind"`
		Entries []Entry   `json:"entries"`
	}{t.Field, t.Kind, t.Entries})
	if err != nil {
		return "", fmt.Errorf("failed to marshal table: %w", err)
	}
	sum := blake2b.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

// TableStorage reads and writes a single table file
type TableStorage struct {
	filepath string
}

func NewTableStorage(filepath string) *TableStorage {
	return &TableStorage{
		filepath: filepath,
	}
}

// Path returns the file location
func (s *TableStorage) Path() string {
	return s.filepath
}

// Save seals the table and writes it in the given format.
func (s *TableStorage) Save(table *TableFile, format Format) error {
	if err := table.Seal(); err != nil {
		return err
	}

	var data []byte
	var err error
	switch format {
	case FormatJSON, "":
		data, err = json.MarshalIndent(table, "", "  ")
	case FormatCSV:
		data, err = encodeCSV(table)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode table: %w", err)
	}

	dir := filepath.Dir(s.filepath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(s.filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// Load reads a JSON table file and verifies its checksum.
func (s *TableStorage) Load() (*TableFile, error) {
	data, err := os.ReadFile(s.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var table TableFile
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to unmarshal table (only JSON exports can be loaded): %w", err)
	}

	if err := table.Verify(); err != nil {
		return &table, err
	}

	return &table, nil
}

func (s *TableStorage) Exists() bool {
	_, err := os.Stat(s.filepath)
	return err == nil
}

func (s *TableStorage) Delete() error {
	if !s.Exists() {
		return nil
	}
	return os.Remove(s.filepath)
}

// encodeCSV writes one row per entry followed by a checksum row.
func encodeCSV(table *TableFile) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"index", "element", "log"}); err != nil {
		return nil, err
	}
	for _, e := range table.Entries {
		if err := w.Write([]string{strconv.FormatUint(e.Index, 10), e.Element, e.Log}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{"checksum_blake2b", "", table.Checksum}); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
