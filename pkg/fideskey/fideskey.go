// Package fideskey implements the key grammar shared by every taxonomy
// reference in a manifest.
//
// A key is a non-empty run of ASCII letters, digits, underscores, hyphens and
// dots. Dots separate levels of a hierarchical key (user.contact.email) but
// the grammar itself does not constrain their placement.
//
// Keys are validated by parsing them with a dedicated participle grammar, so
// the error returned for a bad key carries the offending position:
//
//	if err := fideskey.Validate("user.contact email"); err != nil {
//		fmt.Println(err) // invalid key "user.contact email": 1:13: invalid input text ...
//	}
package fideskey

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type key struct {
	Value string `parser:"@Key"`
}

var (
	keyLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Key", Pattern: `[a-zA-Z0-9_.\-]+`},
	})

	keyParser = participle.MustBuild[key](
		participle.Lexer(keyLexer),
	)
)

// Validate returns an error when s is not a valid key.
func Validate(s string) error {
	parsed, err := keyParser.ParseString("", s)
	if err != nil {
		return errors.Wrapf(err, "invalid key %q", s)
	}

	// The lexer is greedy, so a successful parse always consumes the whole
	// input as a single token.
	if parsed.Value != s {
		return errors.Errorf("invalid key %q", s)
	}

	return nil
}
