package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridoystarlord/schemagen/gen/parser"
)

const monitoringLine = "x86_64,Linux,2,4,8G/16G,50,100G/500G,20%,0.1,0.2,0.3,2024-01-01,5,2,0,1"

func TestParseServerMetrics(t *testing.T) {
	record := parser.ParseServerMetrics(monitoringLine)

	want := map[string]string{
		"architecture":    "x86_64",
		"os":              "Linux",
		"physical_cpus":   "2",
		"virtual_cpus":    "4",
		"ram_used":        "8G",
		"ram_total":       "16G",
		"ram_percentage":  "50",
		"disk_used":       "100G",
		"disk_total":      "500G",
		"disk_percentage": "20",
		"cpu_load_1min":   "0.1",
		"cpu_load_5min":   "0.2",
		"cpu_load_15min":  "0.3",
		"last_boot":       "2024-01-01",
		"tcp_connections": "5",
		"logged_users":    "2",
		"active_vnc":      "0",
		"active_ssh":      "1",
	}
	assert.Equal(t, want, record)
}

func TestParseServerMetricsShortLine(t *testing.T) {
	// Only the first five positions are present; everything past the
	// line's end is simply absent from the record.
	record := parser.ParseServerMetrics("x86_64,Linux,2,4,8G/16G")

	assert.Equal(t, "x86_64", record["architecture"])
	assert.Equal(t, "8G", record["ram_used"])
	assert.Equal(t, "16G", record["ram_total"])
	_, ok := record["ram_percentage"]
	assert.False(t, ok)
	_, ok = record["active_ssh"]
	assert.False(t, ok)
}

func TestParseServerMetricsWhitespace(t *testing.T) {
	record := parser.ParseServerMetrics("  x86_64 , Linux ")
	assert.Equal(t, "x86_64", record["architecture"])
	assert.Equal(t, "Linux", record["os"])
}

func TestParseTopUsersRow(t *testing.T) {
	row := []string{"alice", "12.5%", "30.0%", "1.2", "14", "chrome", "2026-08-18", "Alice"}
	record := parser.ParseTopUsersRow(row)

	assert.Equal(t, "alice", record["username"])
	assert.Equal(t, "12.5", record["cpu_percentage"], "trailing percent sign is stripped")
	assert.Equal(t, "30.0", record["memory_percentage"])
	assert.Equal(t, "1.2", record["disk_usage_gb"])
	assert.Equal(t, "14", record["process_count"])
	assert.Equal(t, "chrome", record["top_process"])
}

func TestParseTopUsersOutput(t *testing.T) {
	block := `USERNAME   CPU%   MEM%   DISK   PROCS  TOP      LOGIN       NAME
----------  -----  -----  -----  -----  -------  ----------  -----
alice      12.5%  30.0%  1.2    14     chrome   2026-08-18  Alice
bob        5.0%   10.0%  0.4    3      sshd     2026-08-17  Bob
`
	records := parser.ParseTopUsersOutput(block)
	require.Len(t, records, 2, "header and separator lines are not records")

	assert.Equal(t, "alice", records[0]["username"])
	assert.Equal(t, "12.5", records[0]["cpu_percentage"])
	assert.Equal(t, "bob", records[1]["username"])
	assert.Equal(t, "5.0", records[1]["cpu_percentage"])
}

func TestParseTopUsersOutputEmpty(t *testing.T) {
	assert.Empty(t, parser.ParseTopUsersOutput(""))
	assert.Empty(t, parser.ParseTopUsersOutput("USERNAME CPU\n---- ----\n"))
}
