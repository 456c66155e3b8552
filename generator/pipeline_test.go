package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/schemagen/generator"
)

const pipelineSchema = `
version: "1.0.0"
entities:
  server_metrics:
    table_name: server_metrics
    description: Server monitoring metrics
    fields:
      - name: id
        type: serial
        primary_key: true
        nullable: false
      - name: server_name
        type: varchar(255)
        nullable: false
      - name: ram_percentage
        type: integer
        extraction:
          index: 0
          format: strip_percent
        validation:
          type: percentage
`

// Two fields with identical index+format: validation must fail.
const duplicateProvenanceSchema = `
version: "1.0.0"
entities:
  server_metrics:
    table_name: server_metrics
    fields:
      - name: ram_used
        type: varchar(30)
        extraction:
          index: 4
          format: part_before_slash
      - name: ram_used_again
        type: varchar(30)
        extraction:
          index: 4
          format: part_before_slash
`

func writePipelineSchema(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestPipelineFullRun(t *testing.T) {
	outDir := t.TempDir()
	p := generator.New(writePipelineSchema(t, pipelineSchema), outDir)
	assert.Equal(t, generator.StateIdle, p.State())

	require.NoError(t, p.Load())
	assert.Equal(t, generator.StateLoaded, p.State())
	require.NotNil(t, p.Document())

	vres, err := p.Validate()
	require.NoError(t, err)
	assert.True(t, vres.Valid())
	assert.Equal(t, generator.StateValidated, p.State())

	results, err := p.Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, generator.StateDone, p.State())
	assert.True(t, p.OK())
	require.Len(t, results, len(generator.AllTargets()))
	for _, r := range results {
		assert.NoError(t, r.Err, "target %s", r.Target)
		assert.NotEmpty(t, r.Files, "target %s", r.Target)
	}

	for _, rel := range []string{
		"sql/schema.sql",
		"models/server_metrics.go",
		"ts/types.ts",
		"validators/validators.go",
		"parser/parser.go",
		"docs/DATABASE_SCHEMA.md",
		"docs/QUICK_REFERENCE.md",
	} {
		_, err := os.Stat(filepath.Join(outDir, rel))
		assert.NoError(t, err, rel)
	}
	assert.Len(t, p.WrittenFiles(), 7)
}

func TestPipelineStateOrderEnforced(t *testing.T) {
	p := generator.New(writePipelineSchema(t, pipelineSchema), t.TempDir())

	_, err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want loaded")

	_, err = p.Generate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want validated")

	require.NoError(t, p.Load())
	err = p.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want idle")
}

func TestPipelineLoadFailureIsFatal(t *testing.T) {
	p := generator.New(filepath.Join(t.TempDir(), "missing.yaml"), t.TempDir())

	require.Error(t, p.Load())
	assert.Equal(t, generator.StateFailed, p.State())
	assert.False(t, p.OK())

	_, err := p.Generate(nil)
	assert.Error(t, err, "a failed pipeline never generates")
}

func TestPipelineValidationFailureBlocksGeneration(t *testing.T) {
	outDir := t.TempDir()
	p := generator.New(writePipelineSchema(t, duplicateProvenanceSchema), outDir)

	require.NoError(t, p.Load())
	vres, err := p.Validate()
	require.Error(t, err)
	assert.False(t, vres.Valid())
	assert.Equal(t, generator.StateFailed, p.State())

	_, err = p.Generate(nil)
	require.Error(t, err)

	// Nothing was written before validation passed.
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPipelineUnknownTargetDoesNotStopOthers(t *testing.T) {
	outDir := t.TempDir()
	p := generator.New(writePipelineSchema(t, pipelineSchema), outDir)
	require.NoError(t, p.Load())
	_, err := p.Validate()
	require.NoError(t, err)

	results, err := p.Generate([]generator.Target{generator.TargetSQL, "bogus", generator.TargetDocs})
	require.NoError(t, err, "per-target failures are collected, not returned")
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	require.Error(t, results[1].Err)
	assert.Contains(t, results[1].Err.Error(), "bogus")
	assert.NoError(t, results[2].Err, "targets after the failure still ran")

	assert.Equal(t, generator.StateDone, p.State())
	assert.False(t, p.OK(), "a recorded failure fails the run as a whole")

	_, statErr := os.Stat(filepath.Join(outDir, "docs", "DATABASE_SCHEMA.md"))
	assert.NoError(t, statErr)
}

func TestPipelineTargetSubset(t *testing.T) {
	outDir := t.TempDir()
	p := generator.New(writePipelineSchema(t, pipelineSchema), outDir)
	require.NoError(t, p.Load())
	_, err := p.Validate()
	require.NoError(t, err)

	results, err := p.Generate([]generator.Target{generator.TargetSQL})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, p.OK())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sql", entries[0].Name())
}
