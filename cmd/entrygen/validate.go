package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metalagman/entrygen"
)

type validateOptions struct {
	schema     string
	schemaFile string
	value      string
}

func newValidateCmd() *cobra.Command {
	opts := &validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a generated file against a JSON schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := resolveSchema(opts.schema, opts.schemaFile, opts.value)
			if err != nil {
				return exitWithError(1, err)
			}

			if err := entrygen.ValidateFile(args[0], schema); err != nil {
				return exitWithError(1, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])

			return err
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "JSON schema (defaults to the entry schema)")
	cmd.Flags().StringVar(&opts.schemaFile, "schema-file", "", "path to JSON schema file")
	cmd.Flags().StringVar(&opts.value, "value", entrygen.DefaultEntryValue, "expected alpha value for the default schema")

	return cmd
}

func resolveSchema(schemaValue, schemaFile, entryValue string) (string, error) {
	if schemaFile == "" {
		if schemaValue == "" {
			return entrygen.DefaultSchema(entryValue), nil
		}

		return schemaValue, nil
	}

	if schemaValue != "" {
		return "", fmt.Errorf("use --schema or --schema-file, not both")
	}

	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return "", fmt.Errorf("read schema file: %w", err)
	}

	return string(data), nil
}
