package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd)
		},
	}
}

func printQuickstart(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), `Quickstart Guide for entrygen

1. Default run
   Write 2,000,000 {"alpha" : "VOO"} entries to generated.json.

   entrygen generate

2. Custom size and value

   entrygen generate --output /tmp/small.json --count 3 --value ABC

3. Safe overwrite
   Stage in a temp file and rename, so a failed run keeps the old file.

   entrygen generate --atomic --validate

4. Config file

   cat > entrygen.yaml <<YAML
   generator:
     output_path: out.json
     entry_count: 1000
     entry_value: VOO
   log:
     level: debug
     format: json
   YAML
   entrygen generate --config entrygen.yaml

5. Check a file

   entrygen validate out.json
   entrygen inspect out.json`)
}
