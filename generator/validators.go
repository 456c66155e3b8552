package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ridoystarlord/schemagen/schema"
)

// GenerateValidators writes the field validator artifact. Pass one
// scans every field of every entity and emits exactly one primitive
// per distinct validation kind; pass two emits one validator type per
// entity whose methods bind each validated field's bounds to the
// matching primitive.
func GenerateValidators(doc *schema.Document, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, "validators")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating validators directory: %w", err)
	}
	outputFile := filepath.Join(dir, "validators.go")

	kinds := distinctKinds(doc)

	var b strings.Builder
	b.WriteString(header(doc, "//"))
	b.WriteString("\npackage validators\n\n")
	b.WriteString(validatorImports(kinds))
	b.WriteString(validatorPreamble)

	for _, kind := range kinds {
		b.WriteString(primitiveFor(kind))
	}

	for _, entity := range doc.Entities {
		b.WriteString(entityValidators(entity))
	}

	if err := os.WriteFile(outputFile, []byte(b.String()), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outputFile, err)
	}
	return []string{outputFile}, nil
}

// distinctKinds collects validation kinds in first-appearance order
// across the whole document, so a kind used by ten fields still yields
// one primitive.
func distinctKinds(doc *schema.Document) []schema.ValidationKind {
	seen := make(map[schema.ValidationKind]bool)
	var kinds []schema.ValidationKind
	for _, entity := range doc.Entities {
		for _, field := range entity.Fields {
			if field.Validation == nil {
				continue
			}
			if !seen[field.Validation.Kind] {
				seen[field.Validation.Kind] = true
				kinds = append(kinds, field.Validation.Kind)
			}
		}
	}
	return kinds
}

func validatorImports(kinds []schema.ValidationKind) string {
	needsMath := false
	for _, k := range kinds {
		if k == schema.ValidateInteger {
			needsMath = true
		}
	}
	if needsMath {
		return "import (\n\t\"fmt\"\n\t\"math\"\n\t\"strconv\"\n\t\"strings\"\n)\n"
	}
	return "import (\n\t\"fmt\"\n\t\"strconv\"\n\t\"strings\"\n)\n"
}

const validatorPreamble = `
// ValidationError reports one failed field check.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func invalid(fieldName, format string, args ...any) error {
	return &ValidationError{Field: fieldName, Message: fmt.Sprintf(format, args...)}
}

// toFloat coerces the loosely typed values arriving from parsers and
// request payloads.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func boundPtr(v float64) *float64 { return &v }

func lengthPtr(v int) *int { return &v }
`

func primitiveFor(kind schema.ValidationKind) string {
	switch kind {
	case schema.ValidatePercentage:
		return `
// ValidatePercentage checks a percentage value (0-100).
func ValidatePercentage(value any, fieldName string) (float64, error) {
	f, ok := toFloat(value)
	if !ok {
		return 0, invalid(fieldName, "must be a number, got %T", value)
	}
	if f < 0 || f > 100 {
		return 0, invalid(fieldName, "must be between 0 and 100, got %v", f)
	}
	return f, nil
}
`
	case schema.ValidateInteger:
		return `
// ValidateInteger checks a whole number with optional bounds.
func ValidateInteger(value any, fieldName string, min, max *float64) (int64, error) {
	f, ok := toFloat(value)
	if !ok || f != math.Trunc(f) {
		return 0, invalid(fieldName, "must be an integer, got %v", value)
	}
	if min != nil && f < *min {
		return 0, invalid(fieldName, "must be >= %v, got %v", *min, f)
	}
	if max != nil && f > *max {
		return 0, invalid(fieldName, "must be <= %v, got %v", *max, f)
	}
	return int64(f), nil
}
`
	case schema.ValidateFloat:
		return `
// ValidateFloat checks a decimal number with optional bounds.
func ValidateFloat(value any, fieldName string, min, max *float64) (float64, error) {
	f, ok := toFloat(value)
	if !ok {
		return 0, invalid(fieldName, "must be a number, got %T", value)
	}
	if min != nil && f < *min {
		return 0, invalid(fieldName, "must be >= %v, got %v", *min, f)
	}
	if max != nil && f > *max {
		return 0, invalid(fieldName, "must be <= %v, got %v", *max, f)
	}
	return f, nil
}
`
	case schema.ValidateString:
		return `
// ValidateString checks a text value with optional max length.
func ValidateString(value any, fieldName string, maxLength *int) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalid(fieldName, "must be a string, got %T", value)
	}
	if maxLength != nil && len(s) > *maxLength {
		return "", invalid(fieldName, "exceeds max length %d", *maxLength)
	}
	return s, nil
}
`
	}
	return ""
}

// entityValidators emits one namespace type per entity with a bound
// method per validated field. Fields without a validation spec get
// nothing.
func entityValidators(entity schema.Entity) string {
	var methods []string
	typeName := toPascalCase(entity.Name) + "Validator"

	for _, field := range entity.Fields {
		if field.Validation == nil {
			continue
		}
		methods = append(methods, fieldValidator(typeName, field))
	}
	if len(methods) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n// %s validates %s fields before they are persisted.\n", typeName, entity.StorageName)
	fmt.Fprintf(&b, "type %s struct{}\n", typeName)
	for _, m := range methods {
		b.WriteString(m)
	}
	return b.String()
}

func fieldValidator(typeName string, field schema.Field) string {
	v := field.Validation
	method := "Validate" + toPascalCase(field.Name)
	doc := field.Description
	if doc == "" {
		doc = field.Name
	}

	var ret, call string
	switch v.Kind {
	case schema.ValidatePercentage:
		ret = "float64"
		call = fmt.Sprintf("ValidatePercentage(value, %q)", field.Name)
	case schema.ValidateInteger:
		ret = "int64"
		call = fmt.Sprintf("ValidateInteger(value, %q, %s, %s)", field.Name, boundExpr(v.Min), boundExpr(v.Max))
	case schema.ValidateFloat:
		ret = "float64"
		call = fmt.Sprintf("ValidateFloat(value, %q, %s, %s)", field.Name, boundExpr(v.Min), boundExpr(v.Max))
	case schema.ValidateString:
		ret = "string"
		call = fmt.Sprintf("ValidateString(value, %q, %s)", field.Name, lengthExpr(v.MaxLength))
	}

	return fmt.Sprintf(`
// %s validates %s.
func (%s) %s(value any) (%s, error) {
	return %s
}
`, method, doc, typeName, method, ret, call)
}

func boundExpr(v *float64) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("boundPtr(%v)", *v)
}

func lengthExpr(v *int) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("lengthPtr(%d)", *v)
}
