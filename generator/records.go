package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/ridoystarlord/schemagen/schema"
	"github.com/ridoystarlord/schemagen/typemap"
)

const recordTemplate = `{{.Header}}
package {{.Package}}

{{if .NeedsTime}}import (
	"time"
)

{{end}}// {{.Name}} is one {{.StorageName}} record.
type {{.Name}} struct {
{{- range .Fields}}
{{- if .Comment}}
	// {{.Comment}}
{{- end}}
	{{.Decl}}
{{- end}}
}

// ToMap converts the record to a map keyed by column name. Time values
// render as RFC3339 text; unset optional fields are omitted.
func (m {{.Name}}) ToMap() map[string]any {
	out := make(map[string]any)
{{- range .Fields}}
{{- range .ToMap}}
	{{.}}
{{- end}}
{{- end}}
	return out
}

// {{.Name}}FromMap builds a record from a map, dropping any keys that
// do not match a declared field.
func {{.Name}}FromMap(data map[string]any) {{.Name}} {
	var m {{.Name}}
{{- range .Fields}}
{{- range .FromMap}}
	{{.}}
{{- end}}
{{- end}}
	return m
}
`

type recordField struct {
	Decl    string
	Comment string
	ToMap   []string
	FromMap []string
}

type recordData struct {
	Header      string
	Package     string
	Name        string
	StorageName string
	NeedsTime   bool
	Fields      []recordField
}

// GenerateRecords writes one Go source file per entity under
// <outDir>/models, each with the record struct and its map round-trip
// pair.
func GenerateRecords(doc *schema.Document, outDir string) ([]string, error) {
	dir := filepath.Join(outDir, "models")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating models directory: %w", err)
	}

	tmpl, err := template.New("record").Parse(recordTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing record template: %w", err)
	}

	var files []string
	for _, entity := range doc.Entities {
		data := recordData{
			Header:      header(doc, "//"),
			Package:     "models",
			Name:        toPascalCase(entity.Name),
			StorageName: entity.StorageName,
		}
		for _, field := range entity.Fields {
			rf := buildRecordField(field)
			if strings.HasPrefix(typemap.GoType(field.Type), "time.") {
				data.NeedsTime = true
			}
			data.Fields = append(data.Fields, rf)
		}

		outputFile := filepath.Join(dir, entity.Name+".go")
		file, err := os.Create(outputFile)
		if err != nil {
			return files, fmt.Errorf("creating %s: %w", outputFile, err)
		}
		if err := tmpl.Execute(file, data); err != nil {
			file.Close()
			return files, fmt.Errorf("rendering %s: %w", outputFile, err)
		}
		if err := file.Close(); err != nil {
			return files, err
		}
		files = append(files, outputFile)
	}
	return files, nil
}

func buildRecordField(field schema.Field) recordField {
	goName := toPascalCase(field.Name)
	goType := typemap.GoType(field.Type)
	optional := field.Optional()
	isTime := goType == "time.Time"
	isAny := goType == "any"

	declType := goType
	jsonTag := field.Name
	if optional {
		jsonTag += ",omitempty"
		if !isAny {
			declType = "*" + goType
		}
	}

	rf := recordField{
		Decl:    fmt.Sprintf("%s %s `json:\"%s\"`", goName, declType, jsonTag),
		Comment: field.Description,
	}

	col := field.Name
	switch {
	case isAny:
		rf.ToMap = []string{
			fmt.Sprintf("if m.%s != nil {", goName),
			fmt.Sprintf("\tout[%q] = m.%s", col, goName),
			"}",
		}
		rf.FromMap = []string{
			fmt.Sprintf("if v, ok := data[%q]; ok {", col),
			fmt.Sprintf("\tm.%s = v", goName),
			"}",
		}
	case isTime && optional:
		rf.ToMap = []string{
			fmt.Sprintf("if m.%s != nil {", goName),
			fmt.Sprintf("\tout[%q] = m.%s.Format(time.RFC3339Nano)", col, goName),
			"}",
		}
		rf.FromMap = []string{
			fmt.Sprintf("if v, ok := data[%q].(string); ok {", col),
			"\tif t, err := time.Parse(time.RFC3339, v); err == nil {",
			fmt.Sprintf("\t\tm.%s = &t", goName),
			"\t}",
			"}",
		}
	case isTime:
		// RFC3339Nano keeps sub-second precision through the round
		// trip; time.Parse with RFC3339 accepts the fraction back.
		rf.ToMap = []string{
			fmt.Sprintf("out[%q] = m.%s.Format(time.RFC3339Nano)", col, goName),
		}
		rf.FromMap = []string{
			fmt.Sprintf("if v, ok := data[%q].(string); ok {", col),
			"\tif t, err := time.Parse(time.RFC3339, v); err == nil {",
			fmt.Sprintf("\t\tm.%s = t", goName),
			"\t}",
			"}",
		}
	case optional:
		rf.ToMap = []string{
			fmt.Sprintf("if m.%s != nil {", goName),
			fmt.Sprintf("\tout[%q] = *m.%s", col, goName),
			"}",
		}
		rf.FromMap = []string{
			fmt.Sprintf("if v, ok := data[%q].(%s); ok {", col, goType),
			fmt.Sprintf("\tm.%s = &v", goName),
			"}",
		}
	default:
		rf.ToMap = []string{
			fmt.Sprintf("out[%q] = m.%s", col, goName),
		}
		rf.FromMap = []string{
			fmt.Sprintf("if v, ok := data[%q].(%s); ok {", col, goType),
			fmt.Sprintf("\tm.%s = v", goName),
			"}",
		}
	}
	return rf
}
