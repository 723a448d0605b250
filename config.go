// Package entrygen writes large JSON arrays of identical entries to disk.
package entrygen

import "fmt"

// Config describes what the generator writes and where.
type Config struct {
	OutputPath     string `json:"output_path"               mapstructure:"output_path"     yaml:"output_path"`
	EntryCount     int    `json:"entry_count"               mapstructure:"entry_count"     yaml:"entry_count"`
	EntryValue     string `json:"entry_value"               mapstructure:"entry_value"     yaml:"entry_value"`
	CanonicalEmpty bool   `json:"canonical_empty,omitempty" mapstructure:"canonical_empty" yaml:"canonical_empty"`
	Atomic         bool   `json:"atomic,omitempty"          mapstructure:"atomic"          yaml:"atomic"`
}

// DefaultConfig returns the config matching the stock behavior:
// two million "VOO" entries written to generated.json.
func DefaultConfig() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		EntryCount: DefaultEntryCount,
		EntryValue: DefaultEntryValue,
	}
}

// Validate reports whether the config can be used to generate output.
func (c Config) Validate() error {
	if c.OutputPath == "" {
		return ErrOutputPathEmpty
	}

	if c.EntryCount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, c.EntryCount)
	}

	return nil
}
