package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/ridoystarlord/schemagen/schema"
)

// header renders the machine-generated banner every artifact starts
// with: the generated marker, the schema version and the generation
// timestamp, using the target language's line-comment prefix.
func header(doc *schema.Document, comment string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Code generated by schemagen. DO NOT EDIT.\n", comment)
	fmt.Fprintf(&b, "%s Schema Version: %s\n", comment, doc.Version)
	fmt.Fprintf(&b, "%s Generated At: %s\n", comment, doc.GeneratedAt.Format(time.RFC3339))
	return b.String()
}

// toPascalCase converts snake_case schema names to exported Go names.
func toPascalCase(s string) string {
	parts := strings.Split(s, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return strings.Join(parts, "")
}
