package schema

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Document is the in-memory form of one schema file. It is built fresh
// on every run and never mutated after loading.
type Document struct {
	Version     string
	GeneratedAt time.Time
	Entities    []Entity
}

// Entity is one record type described by the schema. Field order is
// significant: it drives column order, struct field order and
// documentation order in every generated artifact.
type Entity struct {
	Name        string
	StorageName string
	Description string
	SourceShape SourceShape
	Fields      []Field
}

// SourceShape selects how an entity's raw text records arrive: one
// comma-delimited positional line, or a tabular multi-line block.
type SourceShape int

const (
	ShapeLine SourceShape = iota
	ShapeTabular
)

// ParseSourceShape resolves an entity source_shape token; empty means
// the positional line shape.
func ParseSourceShape(token string) (SourceShape, error) {
	switch token {
	case "", "line":
		return ShapeLine, nil
	case "tabular":
		return ShapeTabular, nil
	}
	return 0, fmt.Errorf("unknown source shape %q", token)
}

// HasExtraction reports whether any field carries an extraction spec;
// entities without one get no generated parser.
func (e Entity) HasExtraction() bool {
	for _, f := range e.Fields {
		if f.Extraction != nil {
			return true
		}
	}
	return false
}

// Field is one named, typed attribute of an Entity.
type Field struct {
	Name          string
	Type          string
	Nullable      bool
	PrimaryKey    bool
	Default       *string
	Description   string
	Extraction    *Extraction
	Validation    *Validation
	Visualization *Visualization
}

// DefaultNow is the reserved default literal meaning "generation-time
// timestamp"; the SQL generator special-cases it.
const DefaultNow = "CURRENT_TIMESTAMP"

// Optional reports whether the field is emitted as optional in typed
// targets. Primary keys are never optional, even if marked nullable.
func (f Field) Optional() bool {
	return f.Nullable && !f.PrimaryKey
}

// Extraction describes how a field's value is read out of an external
// raw text record: the position within the split record plus the
// format rule applied to that positional value.
type Extraction struct {
	Index  int
	Format Format
}

// ProvenanceKey identifies the (position, rule) pair. Two fields in
// one entity may share a position with different rules, never the same
// pair twice.
func (e Extraction) ProvenanceKey() string {
	return fmt.Sprintf("%d:%s", e.Index, e.Format.Token())
}

// FormatKind enumerates the extraction micro-language rules.
type FormatKind int

const (
	FormatRaw FormatKind = iota
	FormatPartBeforeSlash
	FormatPartAfterSlash
	FormatCSVSplit
	FormatStripPercent
)

// Format is one extraction rule. CSVIndex is only meaningful for
// FormatCSVSplit.
type Format struct {
	Kind     FormatKind
	CSVIndex int
}

// ParseFormat resolves a schema token like "raw" or "csv_split_2" into
// a Format. Unknown tokens are errors: the micro-language is a closed
// vocabulary, unlike the open type-token vocabulary.
func ParseFormat(token string) (Format, error) {
	switch token {
	case "", "raw":
		return Format{Kind: FormatRaw}, nil
	case "part_before_slash":
		return Format{Kind: FormatPartBeforeSlash}, nil
	case "part_after_slash":
		return Format{Kind: FormatPartAfterSlash}, nil
	case "strip_percent":
		return Format{Kind: FormatStripPercent}, nil
	}
	if rest, ok := strings.CutPrefix(token, "csv_split_"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return Format{}, fmt.Errorf("invalid csv_split index in format %q", token)
		}
		return Format{Kind: FormatCSVSplit, CSVIndex: n}, nil
	}
	return Format{}, fmt.Errorf("unknown extraction format %q", token)
}

// Token renders the format back to its schema token.
func (f Format) Token() string {
	switch f.Kind {
	case FormatPartBeforeSlash:
		return "part_before_slash"
	case FormatPartAfterSlash:
		return "part_after_slash"
	case FormatCSVSplit:
		return fmt.Sprintf("csv_split_%d", f.CSVIndex)
	case FormatStripPercent:
		return "strip_percent"
	default:
		return "raw"
	}
}

// ValidationKind enumerates the validator primitives.
type ValidationKind int

const (
	ValidatePercentage ValidationKind = iota
	ValidateInteger
	ValidateFloat
	ValidateString
)

// ParseValidationKind resolves a schema validation token.
func ParseValidationKind(token string) (ValidationKind, error) {
	switch token {
	case "percentage":
		return ValidatePercentage, nil
	case "integer":
		return ValidateInteger, nil
	case "float":
		return ValidateFloat, nil
	case "string":
		return ValidateString, nil
	}
	return 0, fmt.Errorf("unknown validation type %q", token)
}

// Token renders the kind back to its schema token.
func (k ValidationKind) Token() string {
	switch k {
	case ValidateInteger:
		return "integer"
	case ValidateFloat:
		return "float"
	case ValidateString:
		return "string"
	default:
		return "percentage"
	}
}

// Validation describes the bound check attached to one field. Min, Max
// and MaxLength are optional; absent bounds are not enforced.
type Validation struct {
	Kind      ValidationKind
	Min       *float64
	Max       *float64
	MaxLength *int
}

// Visualization carries dashboard threshold metadata. Generators only
// use its presence: threshold-bearing fields get an index.
type Visualization struct {
	Thresholds map[string]float64
}

// HasThresholds reports whether the field carries alert thresholds.
func (v *Visualization) HasThresholds() bool {
	return v != nil && len(v.Thresholds) > 0
}

// Entity returns the named entity, or nil if not declared.
func (d *Document) Entity(name string) *Entity {
	for i := range d.Entities {
		if d.Entities[i].Name == name {
			return &d.Entities[i]
		}
	}
	return nil
}

// Field returns the named field, or nil if not declared.
func (e *Entity) Field(name string) *Field {
	for i := range e.Fields {
		if e.Fields[i].Name == name {
			return &e.Fields[i]
		}
	}
	return nil
}
