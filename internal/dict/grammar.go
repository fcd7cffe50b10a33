package dict

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var dictLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\bor\b`},
	{Name: "Connector", Pattern: `@?[A-Za-z][A-Za-z0-9_.*]*[+-]`},
	{Name: "Punct", Pattern: `[(){}&]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// exprAST is the top-level expression: one or more AND-terms joined by OR.
type exprAST struct {
	Or *orAST `parser:"@@"`
}

type orAST struct {
	Left *andAST `parser:"@@"`
	Rest []*andAST `parser:"( \"or\" @@ )*"`
}

type andAST struct {
	Left *atomAST `parser:"@@"`
	Rest []*atomAST `parser:"( \"&\" @@ )*"`
}

// atomAST is a single connector, a "{...}" optional group, or a
// parenthesized sub-expression.
type atomAST struct {
	Optional *orAST `parser:"  \"{\" @@ \"}\""`
	Paren    *orAST `parser:"| \"(\" @@ \")\""`
	Conn     string `parser:"| @Connector"`
}

var exprParser = participle.MustBuild[exprAST](participle.Lexer(dictLexer))
