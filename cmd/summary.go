package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemagen/loader"
)

var summarySchemaFile string

func init() {
	summaryCmd.Flags().StringVarP(&summarySchemaFile, "schema", "s", "schema.yaml", "Schema file to summarize")
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print entity and field counts for the schema document",
	Run: func(cmd *cobra.Command, args []string) {
		doc, err := loader.Load(summarySchemaFile)
		if err != nil {
			fmt.Println("❌ Loading schema:", err)
			os.Exit(1)
		}

		fmt.Println("\n📋 Schema Summary")
		fmt.Println("============================================================")
		fmt.Printf("Version: %s\n", doc.Version)

		for _, entity := range doc.Entities {
			extracted := 0
			for _, field := range entity.Fields {
				if field.Extraction != nil {
					extracted++
				}
			}
			fmt.Printf("%s: %d fields (%d extracted from raw output)\n",
				entity.Name, len(entity.Fields), extracted)
		}

		fmt.Println("============================================================")
	},
}
