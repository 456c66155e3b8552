package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ridoystarlord/schemagen/schema"
	"github.com/ridoystarlord/schemagen/typemap"
)

// GenerateInterfaces writes the client-facing TypeScript definitions:
// one interface per entity plus the generic response envelopes.
func GenerateInterfaces(doc *schema.Document, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, "ts")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating ts directory: %w", err)
	}
	outputFile := filepath.Join(dir, "types.ts")

	var b strings.Builder
	b.WriteString(header(doc, "//"))
	b.WriteString("\n")

	for _, entity := range doc.Entities {
		b.WriteString(tsInterface(entity))
		b.WriteString("\n")
	}

	b.WriteString(`/**
 * Standard API response wrapper
 */
export interface ApiResponse<T> {
  success: boolean;
  data: T;
  message?: string;
}

/**
 * API error response
 */
export interface ApiError {
  success: false;
  message: string;
  error?: string;
}
`)

	if err := os.WriteFile(outputFile, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return []string{outputFile}, nil
}

func tsInterface(entity schema.Entity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "/**\n * %s\n * Table: %s\n */\n", entity.Description, entity.StorageName)
	fmt.Fprintf(&b, "export interface %s {\n", toPascalCase(entity.Name))

	for _, field := range entity.Fields {
		if field.Description != "" {
			fmt.Fprintf(&b, "  /** %s */\n", field.Description)
		}
		marker := ""
		if field.Optional() {
			marker = "?"
		}
		fmt.Fprintf(&b, "  %s%s: %s;\n", field.Name, marker, typemap.TSType(field.Type))
	}

	b.WriteString("}\n")
	return b.String()
}
