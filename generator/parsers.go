package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ridoystarlord/schemagen/schema"
)

// GenerateParsers writes the raw-text extraction artifact: one parse
// function per extraction-backed entity, delegating rule application
// to the extract runtime so the generated code stays declarative.
func GenerateParsers(doc *schema.Document, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, "parser")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating parser directory: %w", err)
	}
	outputFile := filepath.Join(dir, "parser.go")

	var b strings.Builder
	b.WriteString(header(doc, "//"))
	b.WriteString("\npackage parser\n\n")
	b.WriteString("import (\n\t\"github.com/ridoystarlord/schemagen/extract\"\n)\n")

	for _, entity := range doc.Entities {
		if !entity.HasExtraction() {
			continue
		}
		switch entity.SourceShape {
		case schema.ShapeLine:
			b.WriteString(lineParser(entity))
		case schema.ShapeTabular:
			b.WriteString(tabularParser(entity))
		}
	}

	if err := os.WriteFile(outputFile, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return []string{outputFile}, nil
}

// formatExpr renders the extract constructor for one rule.
func formatExpr(f schema.Format) string {
	switch f.Kind {
	case schema.FormatPartBeforeSlash:
		return "extract.PartBeforeSlash()"
	case schema.FormatPartAfterSlash:
		return "extract.PartAfterSlash()"
	case schema.FormatCSVSplit:
		return fmt.Sprintf("extract.CSVSplit(%d)", f.CSVIndex)
	case schema.FormatStripPercent:
		return "extract.StripPercent()"
	default:
		return "extract.Raw()"
	}
}

func extractionLines(entity schema.Entity) string {
	var b strings.Builder
	for _, field := range entity.Fields {
		if field.Extraction == nil {
			continue
		}
		fmt.Fprintf(&b, "\tif v, ok := extract.Apply(parts, %d, %s); ok {\n",
			field.Extraction.Index, formatExpr(field.Extraction.Format))
		fmt.Fprintf(&b, "\t\tout[%q] = v\n", field.Name)
		b.WriteString("\t}\n")
	}
	return b.String()
}

func lineParser(entity schema.Entity) string {
	name := toPascalCase(entity.Name)
	var b strings.Builder
	fmt.Fprintf(&b, "\n// Parse%s parses one comma-delimited %s record. Absent\n", name, entity.StorageName)
	b.WriteString("// positions are omitted from the result.\n")
	fmt.Fprintf(&b, "func Parse%s(line string) map[string]string {\n", name)
	b.WriteString("\tparts := extract.SplitLine(line)\n")
	b.WriteString("\tout := make(map[string]string)\n")
	b.WriteString(extractionLines(entity))
	b.WriteString("\treturn out\n}\n")
	return b.String()
}

func tabularParser(entity schema.Entity) string {
	name := toPascalCase(entity.Name)
	var b strings.Builder

	fmt.Fprintf(&b, "\n// Parse%sRow parses one whitespace-split %s data row.\n", name, entity.StorageName)
	fmt.Fprintf(&b, "func Parse%sRow(parts []string) map[string]string {\n", name)
	b.WriteString("\tout := make(map[string]string)\n")
	b.WriteString(extractionLines(entity))
	b.WriteString("\treturn out\n}\n")

	fmt.Fprintf(&b, "\n// Parse%sOutput parses a complete %s block: the two\n", name, entity.StorageName)
	b.WriteString("// header lines are skipped and separator lines discarded.\n")
	fmt.Fprintf(&b, "func Parse%sOutput(output string) []map[string]string {\n", name)
	b.WriteString("\trows := extract.TabularRows(output)\n")
	b.WriteString("\trecords := make([]map[string]string, 0, len(rows))\n")
	b.WriteString("\tfor _, row := range rows {\n")
	fmt.Fprintf(&b, "\t\trecords = append(records, Parse%sRow(row))\n", name)
	b.WriteString("\t}\n\treturn records\n}\n")
	return b.String()
}
