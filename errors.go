package entrygen

import "errors"

var (
	// ErrOutputPathEmpty indicates the config has no output path.
	ErrOutputPathEmpty = errors.New("output path is empty")
	// ErrNegativeCount indicates a negative entry count was configured.
	ErrNegativeCount = errors.New("entry count is negative")
	// ErrMissingOutputDir indicates the parent directory of the output path does not exist.
	ErrMissingOutputDir = errors.New("output dir missing")
	// ErrWrite indicates the output could not be written.
	ErrWrite = errors.New("write output failed")
	// ErrSchemaEmpty indicates an empty schema was provided.
	ErrSchemaEmpty = errors.New("schema is empty")
	// ErrSchemaInvalid indicates the document does not satisfy the schema.
	ErrSchemaInvalid = errors.New("output does not match schema")
)
