package entrygen

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultSchema returns a JSON schema accepting an array whose items are
// all {"alpha": value} objects.
func DefaultSchema(value string) string {
	schema := map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				EntryKey: map[string]any{"type": "string", "const": value},
			},
			"required":             []string{EntryKey},
			"additionalProperties": false,
		},
	}

	// A map of strings and slices always marshals.
	data, _ := json.Marshal(schema)

	return string(data)
}

// ValidateFile checks the file at path against the given JSON schema.
func ValidateFile(path, schema string) error {
	if strings.TrimSpace(schema) == "" {
		return ErrSchemaEmpty
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrSchemaInvalid, strings.Join(errs, "; "))
}

// Stats describes the shape of a generated file.
type Stats struct {
	Entries    int   `json:"entries"`
	Separators int   `json:"separators"`
	Bytes      int64 `json:"bytes"`
}

// Inspect streams the file at path and counts its entries and ",\n"
// separators without holding the whole document in memory.
func Inspect(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	counter := &separatorCounter{}
	r := io.TeeReader(bufio.NewReader(f), counter)

	entries, err := countEntries(r)
	if err != nil {
		return Stats{}, fmt.Errorf("inspect %s: %w", path, err)
	}

	// The decoder may stop short of EOF; drain so every byte is counted.
	if _, err := io.Copy(io.Discard, r); err != nil {
		return Stats{}, fmt.Errorf("read %s: %w", path, err)
	}

	return Stats{
		Entries:    entries,
		Separators: counter.separators,
		Bytes:      counter.bytes,
	}, nil
}

func countEntries(r io.Reader) (int, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return 0, fmt.Errorf("read array start: %w", err)
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return 0, fmt.Errorf("expected array, got %v", tok)
	}

	entries := 0

	for dec.More() {
		var e Entry
		if err := dec.Decode(&e); err != nil {
			return entries, fmt.Errorf("decode entry %d: %w", entries, err)
		}

		entries++
	}

	if _, err := dec.Token(); err != nil {
		return entries, fmt.Errorf("read array end: %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return entries, fmt.Errorf("trailing data after array")
	}

	return entries, nil
}

// separatorCounter counts ",\n" pairs across write boundaries.
type separatorCounter struct {
	separators int
	bytes      int64
	prevComma  bool
}

func (c *separatorCounter) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' && c.prevComma {
			c.separators++
		}

		c.prevComma = b == ','
	}

	c.bytes += int64(len(p))

	return len(p), nil
}
