package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/metalagman/entrygen"
	"github.com/metalagman/entrygen/internal/config"
)

type generateOptions struct {
	configFile     string
	output         string
	count          int
	value          string
	atomic         bool
	canonicalEmpty bool
	validate       bool
	bufferSize     int
	progressEvery  int
	logLevel       string
	logFormat      string
	timeout        time.Duration
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	defaults := config.Default()

	cmd.Flags().StringVar(&opts.configFile, "config", "", "path to YAML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", defaults.Generator.OutputPath, "output file path")
	cmd.Flags().IntVarP(&opts.count, "count", "n", defaults.Generator.EntryCount, "number of entries to write")
	cmd.Flags().StringVar(&opts.value, "value", defaults.Generator.EntryValue, "value of the alpha field")
	cmd.Flags().BoolVar(&opts.atomic, "atomic", false, "write to a temp file and rename into place")
	cmd.Flags().BoolVar(&opts.canonicalEmpty, "canonical-empty", false, "write [] instead of [\\n\\n] for zero entries")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "validate the written file against the entry schema")
	cmd.Flags().IntVar(&opts.bufferSize, "buffer-size", 64*1024, "write buffer size in bytes")
	cmd.Flags().IntVar(&opts.progressEvery, "progress-every", 0, "log progress every N entries (0 disables)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", defaults.Log.Format, "log format (console, json)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "timeout for the generation run")
}

// resolveSettings loads the config file and applies explicitly set flags over it.
func resolveSettings(cmd *cobra.Command, opts *generateOptions) (config.File, error) {
	file, err := config.Load(opts.configFile)
	if err != nil {
		return config.File{}, err
	}

	flags := cmd.Flags()
	gen := &file.Generator

	if flags.Changed("output") {
		gen.OutputPath = opts.output
	}

	if flags.Changed("count") {
		gen.EntryCount = opts.count
	}

	if flags.Changed("value") {
		gen.EntryValue = opts.value
	}

	if flags.Changed("atomic") {
		gen.Atomic = opts.atomic
	}

	if flags.Changed("canonical-empty") {
		gen.CanonicalEmpty = opts.canonicalEmpty
	}

	if flags.Changed("log-level") {
		file.Log.Level = opts.logLevel
	}

	if flags.Changed("log-format") {
		file.Log.Format = opts.logFormat
	}

	if err := gen.Validate(); err != nil {
		return config.File{}, err
	}

	return file, nil
}

func runOptions(opts *generateOptions) []entrygen.RunOption {
	return []entrygen.RunOption{
		entrygen.WithBufferSize(opts.bufferSize),
		entrygen.WithProgressEvery(opts.progressEvery),
	}
}
