package entrygen

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const defaultBufferSize = 64 * 1024

// RunOptions defines the configuration for a single generation run.
type RunOptions struct {
	logger        zerolog.Logger `validate:"-"`
	bufferSize    int            `validate:"min=16"`
	progressEvery int            `validate:"min=0"`
}

// RunOption configures runtime behavior of a generation run.
type RunOption func(*RunOptions)

// WithLogger sets the logger used for run and progress messages.
func WithLogger(logger zerolog.Logger) RunOption {
	return func(o *RunOptions) {
		o.logger = logger
	}
}

// WithBufferSize sets the size of the write buffer in bytes.
func WithBufferSize(size int) RunOption {
	return func(o *RunOptions) {
		o.bufferSize = size
	}
}

// WithProgressEvery logs a progress line every n entries. Zero disables it.
func WithProgressEvery(n int) RunOption {
	return func(o *RunOptions) {
		o.progressEvery = n
	}
}

var optionsValidator = validator.New(validator.WithPrivateFieldValidation())

func resolveRunOptions(opts []RunOption) (RunOptions, error) {
	out := defaultRunOptions()
	for _, opt := range opts {
		opt(&out)
	}

	if err := optionsValidator.Struct(out); err != nil {
		return RunOptions{}, fmt.Errorf("invalid run options: %w", err)
	}

	return out, nil
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		logger:        zerolog.Nop(),
		bufferSize:    defaultBufferSize,
		progressEvery: 0,
	}
}
