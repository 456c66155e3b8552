// Package extract implements the field extraction micro-language that
// generated parsers are compiled against. Each rule is side-effect-free
// over the raw positional value; a missing position or sub-part yields
// an explicit absent result, never an error.
package extract

import (
	"strings"

	"github.com/ridoystarlord/schemagen/schema"
)

// Raw returns the trim-only rule.
func Raw() schema.Format { return schema.Format{Kind: schema.FormatRaw} }

// PartBeforeSlash returns the rule taking the part before the first "/".
func PartBeforeSlash() schema.Format { return schema.Format{Kind: schema.FormatPartBeforeSlash} }

// PartAfterSlash returns the rule taking the part after the first "/".
func PartAfterSlash() schema.Format { return schema.Format{Kind: schema.FormatPartAfterSlash} }

// CSVSplit returns the rule taking the zero-based n-th comma sub-part.
func CSVSplit(n int) schema.Format {
	return schema.Format{Kind: schema.FormatCSVSplit, CSVIndex: n}
}

// StripPercent returns the rule removing one trailing percent sign.
func StripPercent() schema.Format { return schema.Format{Kind: schema.FormatStripPercent} }

// Apply runs one extraction rule against the positional parts of a raw
// record. ok is false when the position (or, for csv_split, the
// sub-part) does not exist.
func Apply(parts []string, index int, format schema.Format) (value string, ok bool) {
	if index < 0 || index >= len(parts) {
		return "", false
	}
	raw := parts[index]

	switch format.Kind {
	case schema.FormatRaw:
		return strings.TrimSpace(raw), true

	case schema.FormatPartBeforeSlash:
		// A combined "used/total" cell that carries a bare value still
		// parses: no slash means both halves are the whole value.
		if i := strings.Index(raw, "/"); i >= 0 {
			return strings.TrimSpace(raw[:i]), true
		}
		return strings.TrimSpace(raw), true

	case schema.FormatPartAfterSlash:
		if i := strings.Index(raw, "/"); i >= 0 {
			return strings.TrimSpace(raw[i+1:]), true
		}
		return strings.TrimSpace(raw), true

	case schema.FormatCSVSplit:
		sub := strings.Split(raw, ",")
		if format.CSVIndex < 0 || format.CSVIndex >= len(sub) {
			return "", false
		}
		return strings.TrimSpace(sub[format.CSVIndex]), true

	case schema.FormatStripPercent:
		trimmed := strings.TrimSpace(raw)
		return strings.TrimSuffix(trimmed, "%"), true
	}

	return "", false
}

// SplitLine splits one comma-delimited positional record.
func SplitLine(line string) []string {
	return strings.Split(strings.TrimSpace(line), ",")
}

// separatorToken marks ruling lines in tabular command output.
const separatorToken = "----"

// TabularRows splits a multi-line tabular block into positional rows.
// The two-line header is always skipped, any line containing the
// separator token is discarded, and each remaining data line is
// whitespace-split.
func TabularRows(block string) [][]string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	var rows [][]string
	for i, line := range lines {
		if i < 2 {
			continue
		}
		if strings.Contains(line, separatorToken) {
			continue
		}
		rows = append(rows, strings.Fields(line))
	}
	return rows
}
