package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ridoystarlord/schemagen/schema"
)

// GenerateDocs writes the human-readable schema reference: a field
// table per entity plus the micro-language cheat sheet.
func GenerateDocs(doc *schema.Document, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, "docs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating docs directory: %w", err)
	}

	var files []string

	schemaFile := filepath.Join(dir, "DATABASE_SCHEMA.md")
	if err := os.WriteFile(schemaFile, []byte(schemaReference(doc)), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", schemaFile, err)
	}
	files = append(files, schemaFile)

	refFile := filepath.Join(dir, "QUICK_REFERENCE.md")
	if err := os.WriteFile(refFile, []byte(quickReference(doc)), 0644); err != nil {
		return files, fmt.Errorf("writing %s: %w", refFile, err)
	}
	files = append(files, refFile)

	return files, nil
}

func docHeader(doc *schema.Document, title string) string {
	return fmt.Sprintf(`# %s

**Schema Version:** %s
**Generated:** %s

This file is auto-generated from the schema document. Do not edit.

`, title, doc.Version, doc.GeneratedAt.Format(time.RFC3339))
}

func schemaReference(doc *schema.Document) string {
	var b strings.Builder
	b.WriteString(docHeader(doc, "Database Schema Documentation"))

	for i, entity := range doc.Entities {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		fmt.Fprintf(&b, "## Table: `%s`\n\n%s\n\n", entity.StorageName, entity.Description)
		b.WriteString("| Column | Type | Nullable | Description |\n")
		b.WriteString("|--------|------|----------|-------------|\n")

		for _, field := range entity.Fields {
			nullable := "Yes"
			if !field.Nullable {
				nullable = "No"
			}
			desc := field.Description
			if desc == "" {
				desc = "-"
			}
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", field.Name, field.Type, nullable, desc)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func quickReference(doc *schema.Document) string {
	var b strings.Builder
	b.WriteString(docHeader(doc, "Quick Reference Guide"))

	b.WriteString(`## Extraction Format Options

- ` + "`raw`" + ` - value trimmed of surrounding whitespace
- ` + "`part_before_slash`" + ` - part before the first ` + "`/`" + ` (e.g. "2.5G/16G" -> "2.5G")
- ` + "`part_after_slash`" + ` - part after the first ` + "`/`" + ` (e.g. "2.5G/16G" -> "16G")
- ` + "`csv_split_N`" + ` - zero-based N-th comma sub-part (e.g. csv_split_0 on "1,2,3" -> "1")
- ` + "`strip_percent`" + ` - remove one trailing ` + "`%`" + ` (e.g. "45%" -> "45")

## Validation Types

- ` + "`percentage`" + ` - number between 0 and 100
- ` + "`integer`" + ` - whole number (supports min/max)
- ` + "`float`" + ` - decimal number (supports min/max)
- ` + "`string`" + ` - text (supports max_length)

## Regenerating

1. Edit the schema document
2. Run ` + "`schemagen generate`" + `
3. Apply the migration with ` + "`schemagen migrate`" + `
`)

	return b.String()
}
