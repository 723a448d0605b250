package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metalagman/entrygen"
	"github.com/metalagman/entrygen/internal/logging"
)

var exitFn = os.Exit

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a JSON array of identical entries to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	addGenerateFlags(cmd, opts)

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return exitWithError(1, fmt.Errorf("resolve settings: %w", err))
	}

	log, err := logging.New(cmd.ErrOrStderr(), settings.Log.Level, settings.Log.Format)
	if err != nil {
		return exitWithError(1, err)
	}

	gen, err := entrygen.NewGenerator(settings.Generator)
	if err != nil {
		return exitWithError(1, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	runOpts := append(runOptions(opts), entrygen.WithLogger(log))

	res, err := gen.Generate(ctx, runOpts...)
	if err != nil {
		return exitWithError(1, fmt.Errorf("generate: %w", err))
	}

	if opts.validate {
		schema := entrygen.DefaultSchema(settings.Generator.EntryValue)
		if err := entrygen.ValidateFile(res.Path, schema); err != nil {
			return exitWithError(1, fmt.Errorf("validate output: %w", err))
		}

		log.Debug().Str("path", res.Path).Msg("output matches schema")
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.Path); err != nil {
		return exitWithError(1, fmt.Errorf("write stdout: %w", err))
	}

	return nil
}

func exitWithError(code int, err error) error {
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
	}

	if code != 0 {
		exitFn(code)

		return err
	}

	exitFn(1)

	return err
}
