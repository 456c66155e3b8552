// Package typemap holds the per-target type lookup tables. Each target
// owns its own table: the three type systems are not isomorphic, so
// the duplication is deliberate. Every table degrades unknown schema
// tokens to an opaque fallback instead of failing.
package typemap

import "strings"

var sqlTypes = map[string]string{
	"serial":    "SERIAL",
	"bigserial": "BIGSERIAL",
	"integer":   "INTEGER",
	"bigint":    "BIGINT",
	"varchar":   "VARCHAR",
	"decimal":   "DECIMAL",
	"timestamp": "TIMESTAMP",
	"text":      "TEXT",
	"boolean":   "BOOLEAN",
}

var goTypes = map[string]string{
	"serial":    "int",
	"bigserial": "int64",
	"integer":   "int",
	"bigint":    "int64",
	"varchar":   "string",
	"decimal":   "float64",
	"timestamp": "time.Time",
	"text":      "string",
	"boolean":   "bool",
}

var tsTypes = map[string]string{
	"serial":    "number",
	"bigserial": "number",
	"integer":   "number",
	"bigint":    "number",
	"varchar":   "string",
	"decimal":   "number",
	"timestamp": "Date | string",
	"text":      "string",
	"boolean":   "boolean",
}

// baseToken strips a size parameter: "varchar(255)" -> "varchar", "(255)".
func baseToken(token string) (string, string) {
	if i := strings.Index(token, "("); i >= 0 {
		return token[:i], token[i:]
	}
	return token, ""
}

// SQLType maps a schema type token to its storage column type,
// preserving any size parameter. Unknown tokens become TEXT.
func SQLType(token string) string {
	base, param := baseToken(token)
	if t, ok := sqlTypes[strings.ToLower(base)]; ok {
		return t + strings.ToUpper(param)
	}
	return "TEXT"
}

// GoType maps a schema type token to the in-process record type.
// Unknown tokens become any.
func GoType(token string) string {
	base, _ := baseToken(token)
	if t, ok := goTypes[strings.ToLower(base)]; ok {
		return t
	}
	return "any"
}

// TSType maps a schema type token to the client interface type.
// Unknown tokens become any.
func TSType(token string) string {
	base, _ := baseToken(token)
	if t, ok := tsTypes[strings.ToLower(base)]; ok {
		return t
	}
	return "any"
}

// Unknown reports whether a token resolves through the fallback in
// every table; the validator surfaces these as warnings.
func Unknown(token string) bool {
	base, _ := baseToken(token)
	_, ok := goTypes[strings.ToLower(base)]
	return !ok
}
