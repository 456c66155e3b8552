package loader

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ridoystarlord/schemagen/schema"
)

type yamlField struct {
	Name          string             `yaml:"name"`
	Type          string             `yaml:"type"`
	Nullable      *bool              `yaml:"nullable"`
	PrimaryKey    bool               `yaml:"primary_key"`
	Default       *string            `yaml:"default"`
	Description   string             `yaml:"description"`
	Extraction    *yamlExtraction    `yaml:"extraction"`
	Validation    *yamlValidation    `yaml:"validation"`
	Visualization *yamlVisualization `yaml:"visualization"`
}

type yamlExtraction struct {
	Index  int    `yaml:"index"`
	Format string `yaml:"format"`
}

type yamlValidation struct {
	Type      string   `yaml:"type"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	MaxLength *int     `yaml:"max_length"`
}

type yamlVisualization struct {
	Thresholds map[string]float64 `yaml:"thresholds"`
}

type yamlEntity struct {
	TableName   string      `yaml:"table_name"`
	Description string      `yaml:"description"`
	SourceShape string      `yaml:"source_shape"`
	Fields      []yamlField `yaml:"fields"`
}

// Load reads a schema YAML file into a schema.Document and stamps the
// generation timestamp. A file that cannot be read or parsed is fatal
// for the whole run: there is nothing to generate from it.
func Load(filename string) (*schema.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	return doc, nil
}

// Parse builds a Document from raw schema YAML. The entities section
// is walked as a yaml.Node so that declaration order survives; a plain
// map would shuffle entity order between runs.
func Parse(data []byte) (*schema.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("unmarshalling YAML: %w", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, fmt.Errorf("schema document is empty")
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema document must be a mapping")
	}

	doc := &schema.Document{GeneratedAt: time.Now()}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		value := mapping.Content[i+1]

		switch key.Value {
		case "version":
			if err := value.Decode(&doc.Version); err != nil {
				return nil, fmt.Errorf("decoding version: %w", err)
			}
		case "entities":
			entities, err := decodeEntities(value)
			if err != nil {
				return nil, err
			}
			doc.Entities = entities
		}
	}

	return doc, nil
}

func decodeEntities(node *yaml.Node) ([]schema.Entity, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("entities section must be a mapping")
	}

	var entities []schema.Entity
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		var ye yamlEntity
		if err := node.Content[i+1].Decode(&ye); err != nil {
			return nil, fmt.Errorf("decoding entity %q: %w", name, err)
		}

		shape, err := schema.ParseSourceShape(ye.SourceShape)
		if err != nil {
			return nil, fmt.Errorf("entity %q: %w", name, err)
		}
		entity := schema.Entity{
			Name:        name,
			StorageName: ye.TableName,
			Description: ye.Description,
			SourceShape: shape,
		}
		for _, yf := range ye.Fields {
			field, err := convertField(name, yf)
			if err != nil {
				return nil, err
			}
			entity.Fields = append(entity.Fields, field)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func convertField(entityName string, yf yamlField) (schema.Field, error) {
	field := schema.Field{
		Name:        yf.Name,
		Type:        yf.Type,
		Nullable:    true,
		PrimaryKey:  yf.PrimaryKey,
		Default:     yf.Default,
		Description: yf.Description,
	}
	if yf.Nullable != nil {
		field.Nullable = *yf.Nullable
	}

	if yf.Extraction != nil {
		format, err := schema.ParseFormat(yf.Extraction.Format)
		if err != nil {
			return schema.Field{}, fmt.Errorf("entity %q field %q: %w", entityName, yf.Name, err)
		}
		field.Extraction = &schema.Extraction{Index: yf.Extraction.Index, Format: format}
	}

	if yf.Validation != nil {
		kind, err := schema.ParseValidationKind(yf.Validation.Type)
		if err != nil {
			return schema.Field{}, fmt.Errorf("entity %q field %q: %w", entityName, yf.Name, err)
		}
		field.Validation = &schema.Validation{
			Kind:      kind,
			Min:       yf.Validation.Min,
			Max:       yf.Validation.Max,
			MaxLength: yf.Validation.MaxLength,
		}
	}

	if yf.Visualization != nil {
		field.Visualization = &schema.Visualization{Thresholds: yf.Visualization.Thresholds}
	}

	return field, nil
}
