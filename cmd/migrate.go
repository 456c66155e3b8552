package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ridoystarlord/schemagen/database"
	"github.com/ridoystarlord/schemagen/runner"
)

var migrateOutputDir string

func init() {
	migrateCmd.Flags().StringVarP(&migrateOutputDir, "output", "o", "gen", "Output directory holding the generated DDL")
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the generated DDL artifact to the database",
	Long: `Apply gen/sql/schema.sql to the database at DATABASE_URL and
record it in schema_migrations. Run "schemagen generate" first.
`,
	Run: func(cmd *cobra.Command, args []string) {
		path := filepath.Join(migrateOutputDir, "sql", "schema.sql")
		if _, err := os.Stat(path); err != nil {
			fmt.Printf("❌ No DDL artifact at %s (run \"schemagen generate\" first)\n", path)
			os.Exit(1)
		}

		defer database.ClosePool()
		if err := runner.ApplyMigration(path); err != nil {
			fmt.Println("❌ Applying migration:", err)
			os.Exit(1)
		}

		fmt.Println("✅ Migration applied:", path)
	},
}
