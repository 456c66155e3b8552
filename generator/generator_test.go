package generator_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/schemagen/generator"
	"github.com/ridoystarlord/schemagen/schema"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func testDoc() *schema.Document {
	return &schema.Document{
		Version:     "1.0.0",
		GeneratedAt: time.Date(2026, 8, 19, 11, 42, 7, 0, time.UTC),
		Entities: []schema.Entity{
			{
				Name:        "server_metrics",
				StorageName: "server_metrics",
				Description: "Server monitoring metrics",
				SourceShape: schema.ShapeLine,
				Fields: []schema.Field{
					// Marked nullable on purpose: primary keys must
					// still come out non-optional.
					{Name: "id", Type: "serial", PrimaryKey: true, Nullable: true},
					{Name: "server_name", Type: "varchar(255)", Nullable: false},
					{Name: "timestamp", Type: "timestamp", Nullable: false, Default: strPtr(schema.DefaultNow)},
					{Name: "ram_used", Type: "varchar(30)", Nullable: true,
						Extraction: &schema.Extraction{Index: 4, Format: schema.Format{Kind: schema.FormatPartBeforeSlash}}},
					{Name: "ram_total", Type: "varchar(30)", Nullable: true,
						Extraction: &schema.Extraction{Index: 4, Format: schema.Format{Kind: schema.FormatPartAfterSlash}}},
					{Name: "ram_percentage", Type: "integer", Nullable: true,
						Extraction: &schema.Extraction{Index: 5, Format: schema.Format{Kind: schema.FormatStripPercent}},
						Validation: &schema.Validation{Kind: schema.ValidatePercentage},
						Visualization: &schema.Visualization{Thresholds: map[string]float64{"warning": 80}}},
					{Name: "cpu_load_1min", Type: "decimal(5,2)", Nullable: true,
						Extraction: &schema.Extraction{Index: 6, Format: schema.Format{Kind: schema.FormatCSVSplit, CSVIndex: 0}},
						Validation: &schema.Validation{Kind: schema.ValidateFloat, Min: floatPtr(0)}},
				},
			},
			{
				Name:        "top_users",
				StorageName: "top_users",
				Description: "Per-user usage",
				SourceShape: schema.ShapeTabular,
				Fields: []schema.Field{
					{Name: "id", Type: "serial", PrimaryKey: true},
					{Name: "username", Type: "varchar(255)", Nullable: false,
						Extraction: &schema.Extraction{Index: 0, Format: schema.Format{Kind: schema.FormatRaw}},
						Validation: &schema.Validation{Kind: schema.ValidateString, MaxLength: intPtr(255)}},
					{Name: "cpu_percentage", Type: "decimal(5,2)", Nullable: true,
						Extraction: &schema.Extraction{Index: 1, Format: schema.Format{Kind: schema.FormatStripPercent}},
						// Same kind as server_metrics.ram_percentage:
						// still only one primitive in the artifact.
						Validation: &schema.Validation{Kind: schema.ValidatePercentage}},
				},
			},
		},
	}
}

func readArtifact(t *testing.T, files []string, suffix string) string {
	t.Helper()
	for _, f := range files {
		if strings.HasSuffix(f, suffix) {
			data, err := os.ReadFile(f)
			require.NoError(t, err)
			return string(data)
		}
	}
	t.Fatalf("no artifact with suffix %s in %v", suffix, files)
	return ""
}

func assertOrdered(t *testing.T, content string, names ...string) {
	t.Helper()
	last := -1
	for _, name := range names {
		idx := strings.Index(content, name)
		require.GreaterOrEqual(t, idx, 0, "missing %q", name)
		assert.Greater(t, idx, last, "%q out of declared order", name)
		last = idx
	}
}

func TestGenerateSQL(t *testing.T) {
	files, err := generator.GenerateSQL(testDoc(), t.TempDir())
	require.NoError(t, err)
	content := readArtifact(t, files, "schema.sql")

	assert.Contains(t, content, "-- Code generated by schemagen. DO NOT EDIT.")
	assert.Contains(t, content, "-- Schema Version: 1.0.0")
	assert.Contains(t, content, "CREATE TABLE IF NOT EXISTS server_metrics (")
	assert.Contains(t, content, "server_name VARCHAR(255) NOT NULL")
	assert.Contains(t, content, "timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP")

	// NOT NULL tracks the nullable flag exactly, primary key or not:
	// server_metrics declares its id nullable, top_users does not.
	assert.Contains(t, content, "id SERIAL PRIMARY KEY,")
	assert.Contains(t, content, "id SERIAL PRIMARY KEY NOT NULL,")

	// Heuristic indexes: canonical names plus threshold-bearing fields.
	assert.Contains(t, content, "CREATE INDEX IF NOT EXISTS idx_server_metrics_server_name ON server_metrics(server_name);")
	assert.Contains(t, content, "CREATE INDEX IF NOT EXISTS idx_server_metrics_timestamp ON server_metrics(timestamp);")
	assert.Contains(t, content, "CREATE INDEX IF NOT EXISTS idx_server_metrics_ram_percentage ON server_metrics(ram_percentage);")
	assert.NotContains(t, content, "idx_server_metrics_ram_used", "plain fields are not indexed")
	assert.NotContains(t, content, "idx_top_users_server_name", "absent canonical fields are skipped")

	assertOrdered(t, content, "BEGIN;", "server_metrics", "top_users", "COMMIT;")
}

func TestGenerateRecordsFieldOrderAndOptionality(t *testing.T) {
	files, err := generator.GenerateRecords(testDoc(), t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 2)

	content := readArtifact(t, files, "server_metrics.go")
	assert.Contains(t, content, "// Code generated by schemagen. DO NOT EDIT.")
	assert.Contains(t, content, "package models")

	assertOrdered(t, content,
		"Id int", "ServerName string", "Timestamp time.Time",
		"RamUsed *string", "RamTotal *string", "RamPercentage *int", "CpuLoad1min *float64")

	// primary_key+nullable stays non-optional.
	assert.Contains(t, content, "Id int `json:\"id\"`")
	assert.NotContains(t, content, "Id *int")

	assert.Contains(t, content, "func (m ServerMetrics) ToMap() map[string]any")
	assert.Contains(t, content, "func ServerMetricsFromMap(data map[string]any) ServerMetrics")
	assert.Contains(t, content, `out["timestamp"] = m.Timestamp.Format(time.RFC3339Nano)`)
}

func TestGenerateInterfaces(t *testing.T) {
	files, err := generator.GenerateInterfaces(testDoc(), t.TempDir())
	require.NoError(t, err)
	content := readArtifact(t, files, "types.ts")

	assertOrdered(t, content,
		"export interface ServerMetrics",
		"id: number;", "server_name: string;", "timestamp: Date | string;",
		"ram_used?: string;", "ram_total?: string;",
		"export interface TopUsers",
		"export interface ApiResponse<T>",
		"export interface ApiError")

	assert.NotContains(t, content, "id?:", "primary key is never optional")
}

func TestGenerateValidatorsDeduplicatesPrimitives(t *testing.T) {
	files, err := generator.GenerateValidators(testDoc(), t.TempDir())
	require.NoError(t, err)
	content := readArtifact(t, files, "validators.go")

	// percentage appears on two fields across two entities; the
	// primitive is still emitted exactly once.
	assert.Equal(t, 1, strings.Count(content, "func ValidatePercentage(value any"))
	assert.Equal(t, 1, strings.Count(content, "func ValidateFloat(value any"))
	assert.Equal(t, 1, strings.Count(content, "func ValidateString(value any"))
	assert.NotContains(t, content, "func ValidateInteger(value any",
		"kinds absent from the schema get no primitive")

	assert.Contains(t, content, "type ServerMetricsValidator struct{}")
	assert.Contains(t, content, "func (ServerMetricsValidator) ValidateRamPercentage(value any) (float64, error)")
	assert.Contains(t, content, `ValidateFloat(value, "cpu_load_1min", boundPtr(0), nil)`)
	assert.Contains(t, content, `ValidateString(value, "username", lengthPtr(255))`)

	// Fields without a validation spec get no validator at all.
	assert.NotContains(t, content, "ValidateRamUsed")
	assert.NotContains(t, content, "ValidateId")
}

func TestGenerateParsers(t *testing.T) {
	files, err := generator.GenerateParsers(testDoc(), t.TempDir())
	require.NoError(t, err)
	content := readArtifact(t, files, "parser.go")

	assert.Contains(t, content, "func ParseServerMetrics(line string) map[string]string")
	assert.Contains(t, content, "func ParseTopUsersRow(parts []string) map[string]string")
	assert.Contains(t, content, "func ParseTopUsersOutput(output string) []map[string]string")

	assert.Contains(t, content, "extract.Apply(parts, 4, extract.PartBeforeSlash())")
	assert.Contains(t, content, "extract.Apply(parts, 4, extract.PartAfterSlash())")
	assert.Contains(t, content, "extract.Apply(parts, 5, extract.StripPercent())")
	assert.Contains(t, content, "extract.Apply(parts, 6, extract.CSVSplit(0))")

	// Fields without extraction specs never reach the parser.
	assert.NotContains(t, content, `"server_name"`)
}

func TestGenerateDocsFieldOrder(t *testing.T) {
	files, err := generator.GenerateDocs(testDoc(), t.TempDir())
	require.NoError(t, err)
	require.Len(t, files, 2)

	content := readArtifact(t, files, "DATABASE_SCHEMA.md")
	assertOrdered(t, content,
		"## Table: `server_metrics`",
		"| `id` |", "| `server_name` |", "| `timestamp` |",
		"| `ram_used` |", "| `ram_total` |",
		"## Table: `top_users`")

	ref := readArtifact(t, files, "QUICK_REFERENCE.md")
	for _, token := range []string{"raw", "part_before_slash", "part_after_slash", "csv_split_N", "strip_percent",
		"percentage", "integer", "float", "string"} {
		assert.Contains(t, ref, "`"+token+"`")
	}
}

// stripTimestamps removes the generation-time lines so two runs can be
// compared byte for byte.
func stripTimestamps(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if strings.Contains(line, "Generated At:") || strings.Contains(line, "**Generated:**") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func TestRegenerationIsByteIdenticalExceptTimestamp(t *testing.T) {
	docA := testDoc()
	docB := testDoc()
	docB.GeneratedAt = docA.GeneratedAt.Add(3 * time.Hour)

	dirA := t.TempDir()
	dirB := t.TempDir()

	for _, run := range []struct {
		doc *schema.Document
		dir string
	}{{docA, dirA}, {docB, dirB}} {
		for _, fn := range []func(*schema.Document, string) ([]string, error){
			generator.GenerateSQL, generator.GenerateRecords, generator.GenerateInterfaces,
			generator.GenerateValidators, generator.GenerateParsers, generator.GenerateDocs,
		} {
			_, err := fn(run.doc, run.dir)
			require.NoError(t, err)
		}
	}

	err := filepath.Walk(dirA, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dirA, path)
		require.NoError(t, err)

		a, err := os.ReadFile(path)
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, rel))
		require.NoError(t, err)

		assert.Equal(t, stripTimestamps(string(a)), stripTimestamps(string(b)), rel)
		assert.NotEqual(t, string(a), string(b), "%s should differ only by timestamp", rel)
		return nil
	})
	require.NoError(t, err)
}
