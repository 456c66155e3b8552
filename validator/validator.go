package validator

import (
	"fmt"

	"github.com/ridoystarlord/schemagen/schema"
	"github.com/ridoystarlord/schemagen/typemap"
)

// Result holds everything found in one validation pass. Errors block
// generation; warnings do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether generation may proceed.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a loaded document for structural contradictions. It
// never mutates the document and never stops at the first finding: the
// caller sees every problem in one pass.
func Validate(doc *schema.Document) Result {
	var result Result

	if doc.Version == "" {
		result.Errors = append(result.Errors, "missing required key: version")
	}
	if len(doc.Entities) == 0 {
		result.Errors = append(result.Errors, "schema declares no entities")
	}

	for _, entity := range doc.Entities {
		validateEntity(entity, &result)
	}

	return result
}

func validateEntity(entity schema.Entity, result *Result) {
	if entity.StorageName == "" {
		result.Errors = append(result.Errors,
			fmt.Sprintf("entity %q missing table_name", entity.Name))
	}
	if len(entity.Fields) == 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("entity %q declares no fields", entity.Name))
	}

	fieldNames := make(map[string]bool)
	provenance := make(map[string]string) // provenance key -> first claiming field

	for _, field := range entity.Fields {
		if field.Name == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("entity %q has a field with no name", entity.Name))
			continue
		}
		if field.Type == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("entity %q field %q missing type", entity.Name, field.Name))
		}

		if fieldNames[field.Name] {
			result.Errors = append(result.Errors,
				fmt.Sprintf("entity %q declares field %q more than once", entity.Name, field.Name))
		}
		fieldNames[field.Name] = true

		// Two fields may read the same raw column with different
		// formats; the identical (index, format) pair twice is a
		// provenance contradiction.
		if field.Extraction != nil {
			key := field.Extraction.ProvenanceKey()
			if first, seen := provenance[key]; seen {
				result.Errors = append(result.Errors,
					fmt.Sprintf("entity %q: duplicate extraction index %d with format %q (fields %q and %q)",
						entity.Name, field.Extraction.Index, field.Extraction.Format.Token(), first, field.Name))
			} else {
				provenance[key] = field.Name
			}
		}

		if field.Type != "" && typemap.Unknown(field.Type) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("entity %q field %q: unknown type %q falls back to opaque target types",
					entity.Name, field.Name, field.Type))
		}
	}
}
