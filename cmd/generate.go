package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemagen/generator"
)

var (
	schemaFile string
	outputDir  string
	targetList string
)

func init() {
	generateCmd.Flags().StringVarP(&schemaFile, "schema", "s", "schema.yaml", "Schema YAML file to load")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "gen", "Output directory for generated artifacts")
	generateCmd.Flags().StringVarP(&targetList, "target", "t", "all", "Comma-separated targets (sql,models,types,validators,parsers,docs)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate all artifacts from the schema document",
	Long: `Load and validate the schema document, then run the selected
generators. A failing generator is reported but does not stop the
remaining targets.

Examples:
  schemagen generate                      # all targets from schema.yaml
  schemagen generate -s custom.yaml       # custom schema file
  schemagen generate --target sql,docs    # subset of targets
`,
	Run: func(cmd *cobra.Command, args []string) {
		pipeline := generator.New(schemaFile, outputDir)

		if err := pipeline.Load(); err != nil {
			fmt.Println("❌ Loading schema:", err)
			os.Exit(1)
		}

		validation, err := pipeline.Validate()
		for _, w := range validation.Warnings {
			color.Yellow("⚠️  %s", w)
		}
		if err != nil {
			color.Red("❌ Schema validation failed:")
			for _, e := range validation.Errors {
				fmt.Printf("   - %s\n", e)
			}
			os.Exit(1)
		}

		doc := pipeline.Document()
		fmt.Printf("\n🚀 Generating code from schema (version %s)...\n\n", doc.Version)

		results, err := pipeline.Generate(parseTargets(targetList))
		if err != nil {
			fmt.Println("❌ Generating:", err)
			os.Exit(1)
		}

		for _, r := range results {
			if r.Err != nil {
				color.Red("   ❌ %s: %v", r.Target, r.Err)
				continue
			}
			fmt.Printf("   ✅ %s: %d file(s)\n", r.Target, len(r.Files))
		}

		files := pipeline.WrittenFiles()
		fmt.Printf("\n📁 Generated %d files:\n", len(files))
		for _, f := range files {
			fmt.Printf("   - %s\n", f)
		}

		if !pipeline.OK() {
			color.Red("\n❌ Generation finished with failures")
			os.Exit(1)
		}
		color.Green("\n✅ Generation complete!")
	},
}

func parseTargets(list string) []generator.Target {
	if list == "" || list == "all" {
		return generator.AllTargets()
	}
	var targets []generator.Target
	for _, name := range strings.Split(list, ",") {
		targets = append(targets, generator.Target(strings.TrimSpace(name)))
	}
	return targets
}
