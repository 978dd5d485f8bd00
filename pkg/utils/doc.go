// Package utils provides small helpers shared by the steward packages.
//
// # Identifier Utilities (identifier.go)
//
// Catalog queries that can't bind a schema or table name as a parameter splice
// it into the SQL text instead. QuoteIdentifier makes that safe:
//
//	query := "SELECT name FROM " + utils.QuoteQualifiedName(schema, "sqlite_master")
//	// Result for schema main: SELECT name FROM "main"."sqlite_master"
//
// # Pointers (ptr.go)
//
// Ptr returns a pointer to any value, for filling pointer fields from
// literals:
//
//	v := utils.Ptr(false)
package utils
