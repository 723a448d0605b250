package entrygen

const (
	// DefaultOutputPath is the file written when no path is configured.
	DefaultOutputPath = "generated.json"
	// DefaultEntryCount is the number of entries written by default.
	DefaultEntryCount = 2_000_000
	// DefaultEntryValue is the value of the alpha field.
	DefaultEntryValue = "VOO"
	// EntryKey is the single field name of every entry.
	EntryKey = "alpha"
)

const outputFilePerm = 0o644

const (
	arrayOpen      = "[\n"
	arrayClose     = "\n]"
	arrayEmpty     = "[]"
	entrySeparator = ",\n"
)
