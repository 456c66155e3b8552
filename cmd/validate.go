package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemagen/loader"
	"github.com/ridoystarlord/schemagen/validator"
)

var validateSchemaFile string

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "schema.yaml", "Schema file to validate")
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the schema document without generating",
	Long: `Load the schema document and run every structural check:
required top-level sections, field name/type presence, duplicate
field names and duplicate extraction provenance. All findings are
reported together; nothing is written.

Examples:
  schemagen validate
  schemagen validate --schema custom.yaml
`,
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.Load(validateSchemaFile)
		if err != nil {
			fmt.Println("❌ Loading schema:", err)
			os.Exit(1)
		}

		fmt.Println("🔍 Validating schema...")
		result := validator.Validate(doc)

		if len(result.Warnings) > 0 {
			fmt.Printf("\n🟡 Warnings (%d):\n", len(result.Warnings))
			for i, w := range result.Warnings {
				fmt.Printf("  %d. %s\n", i+1, w)
			}
		}

		if !result.Valid() {
			color.Red("\n❌ Schema validation failed!")
			fmt.Printf("\n🔴 Errors (%d):\n", len(result.Errors))
			for i, e := range result.Errors {
				fmt.Printf("  %d. %s\n", i+1, e)
			}
			os.Exit(1)
		}

		color.Green("✅ Schema validation passed!")
	},
}
