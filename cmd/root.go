package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schemagen",
	Short: "Schema-driven multi-target code generator",
	Long: `schemagen compiles one declarative schema document into the
artifacts that have to stay in sync: SQL DDL, Go record types,
TypeScript interfaces, field validators, raw-text parsers and
reference documentation.

Examples:

  schemagen validate
  schemagen generate
  schemagen generate --target sql,models
  schemagen migrate
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(migrateCmd)
}
