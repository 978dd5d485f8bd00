package utils

import "strings"

// QuoteIdentifier wraps an identifier in double quotes, doubling any quote it
// contains. The result is safe to splice into SQL for engines following the
// standard quoting rules (PostgreSQL, SQLite).
//
// Examples:
//   - "main" -> "\"main\""
//   - "my schema" -> "\"my schema\""
//   - "odd\"name" -> "\"odd\"\"name\""
//   - "" -> "\"\""
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteQualifiedName quotes each part of a qualified name and joins them with
// dots. Empty parts are dropped.
//
// Examples:
//   - ("main", "users") -> "\"main\".\"users\""
//   - ("", "users") -> "\"users\""
func QuoteQualifiedName(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			quoted = append(quoted, QuoteIdentifier(part))
		}
	}
	return strings.Join(quoted, ".")
}
