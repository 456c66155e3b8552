package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ridoystarlord/schemagen/schema"
	"github.com/ridoystarlord/schemagen/typemap"
)

// Field names that always get an index when present; these are the
// grouping and time axes every dashboard query filters on.
var alwaysIndexed = []string{"server_name", "timestamp"}

// GenerateSQL writes the storage DDL artifact: one idempotent CREATE
// TABLE per entity followed by its index statements, wrapped in a
// single transaction.
func GenerateSQL(doc *schema.Document, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, "sql")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating sql directory: %w", err)
	}
	outputFile := filepath.Join(dir, "schema.sql")

	var b strings.Builder
	b.WriteString(header(doc, "--"))
	b.WriteString("\nBEGIN;\n")

	for _, entity := range doc.Entities {
		b.WriteString("\n-- " + entity.Description + "\n")
		b.WriteString(createTable(entity))
		if idx := createIndexes(entity); idx != "" {
			b.WriteString("\n" + idx)
		}
	}

	b.WriteString("\nCOMMIT;\n")

	if err := os.WriteFile(outputFile, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return []string{outputFile}, nil
}

func createTable(entity schema.Entity) string {
	var defs []string
	for _, field := range entity.Fields {
		parts := []string{"    " + field.Name, typemap.SQLType(field.Type)}
		if field.PrimaryKey {
			parts = append(parts, "PRIMARY KEY")
		}
		if !field.Nullable {
			parts = append(parts, "NOT NULL")
		}
		if field.Default != nil {
			if *field.Default == schema.DefaultNow {
				parts = append(parts, "DEFAULT CURRENT_TIMESTAMP")
			} else {
				parts = append(parts, fmt.Sprintf("DEFAULT '%s'", *field.Default))
			}
		}
		defs = append(defs, strings.Join(parts, " "))
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);\n",
		entity.StorageName, strings.Join(defs, ",\n"))
}

// createIndexes emits CREATE INDEX statements by heuristic: the
// canonical grouping/time fields when present, plus every field
// carrying visualization thresholds (threshold-bearing fields are
// range-filtered by alert queries even when nobody asked for an
// index explicitly).
func createIndexes(entity schema.Entity) string {
	names := append([]string{}, alwaysIndexed...)
	for _, field := range entity.Fields {
		if field.Visualization.HasThresholds() && !contains(names, field.Name) {
			names = append(names, field.Name)
		}
	}

	var stmts []string
	for _, name := range names {
		if entity.Field(name) == nil {
			continue
		}
		stmts = append(stmts, fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s(%s);",
			entity.StorageName, name, entity.StorageName, name))
	}
	if len(stmts) == 0 {
		return ""
	}
	return strings.Join(stmts, "\n") + "\n"
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
