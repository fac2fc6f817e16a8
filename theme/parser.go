package theme

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	themeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `\d+(?:\.\d+)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Colon", Pattern: `:`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(themeLexer),
		participle.Elide("Whitespace", "LineComment", "HashComment"),
		participle.UseLookahead(2),
	)
)

// Document is the root AST node for a theme file.
type Document struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Statements []*Statement   `parser:"Newline* 'theme' '{' Newline* ( @@ Newline* )* '}' Newline*"`
}

// Statement is either a top-level assignment or a named style block.
type Statement struct {
	Assignment *Assignment `parser:"  @@"`
	Style      *StyleBlock `parser:"| @@"`
}

// Assignment uses colon syntax (key: value...). Multi-value assignments
// (eg. `canvas: 640 400`) carry one Value per token.
type Assignment struct {
	Key    string   `parser:"@Ident Colon"`
	Values []*Value `parser:"@@+"`
}

// StyleBlock groups the assignments of one text role (quote/highlight/attribution).
type StyleBlock struct {
	Name        string        `parser:"@Ident"`
	Assignments []*Assignment `parser:"'{' Newline* ( @@ Newline* )* '}'"`
}

// Value represents a property value.
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Number *float64       `parser:"| @Number"`
	Color  *string        `parser:"| @Color"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses theme content from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses theme content from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
