package inspect

import (
	"fmt"
	"strings"
)

type (
	// ConnectivityError is returned by Open when the database can't be
	// reached. Target never includes the password.
	ConnectivityError struct {
		Dialect Dialect
		Target  string
		Err     error
	}

	// IntrospectionError is returned when reading the catalog fails part way.
	IntrospectionError struct {
		Op     string
		Schema string
		Table  string
		Err    error
	}
)

func (e *ConnectivityError) Error() string {
	if e.Dialect == "" {
		return fmt.Sprintf("failed to connect to %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("failed to connect to %s database %s: %v", e.Dialect, e.Target, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

func (e *IntrospectionError) Error() string {
	var b strings.Builder
	b.WriteString("failed to ")
	b.WriteString(e.Op)

	switch {
	case e.Table != "":
		fmt.Fprintf(&b, " of %s.%s", e.Schema, e.Table)
	case e.Schema != "":
		fmt.Fprintf(&b, " in schema %s", e.Schema)
	}

	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *IntrospectionError) Unwrap() error { return e.Err }
