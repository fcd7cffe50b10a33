package dict

import (
	"fmt"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/expr"
)

// ParseExpression parses a dictionary expression string, e.g.
// "Wd- & (S+ or {Xc+})", into an expr.Exp tree. It is the reference
// grammar MemDictionary builds fixtures with; it is not a substitute for
// a real affix-file reader.
func ParseExpression(src string) (expr.Exp, error) {
	ast, err := exprParser.ParseString("", src)
	if err != nil {
		return nil, SyntaxError{Kind: "InvalidExpression", Message: err.Error()}
	}
	return convertOr(ast.Or), nil
}

func convertOr(ast *orAST) expr.Exp {
	children := make([]expr.Exp, 0, 1+len(ast.Rest))
	children = append(children, convertAnd(ast.Left))
	for _, r := range ast.Rest {
		children = append(children, convertAnd(r))
	}
	if len(children) == 1 {
		return children[0]
	}
	return expr.Or{Children: children}
}

func convertAnd(ast *andAST) expr.Exp {
	children := make([]expr.Exp, 0, 1+len(ast.Rest))
	children = append(children, convertAtom(ast.Left))
	for _, r := range ast.Rest {
		children = append(children, convertAtom(r))
	}
	if len(children) == 1 {
		return children[0]
	}
	return expr.And{Children: children}
}

func convertAtom(ast *atomAST) expr.Exp {
	switch {
	case ast.Optional != nil:
		return expr.Optional(convertOr(ast.Optional))
	case ast.Paren != nil:
		return convertOr(ast.Paren)
	default:
		return convertConnectorToken(ast.Conn)
	}
}

// convertConnectorToken splits a lexed Connector token such as "@Ss+"
// into its multi flag, name, and direction.
func convertConnectorToken(tok string) expr.Connector {
	multi := false
	if tok[0] == '@' {
		multi = true
		tok = tok[1:]
	}
	dir := connector.Direction(tok[len(tok)-1])
	name := tok[:len(tok)-1]
	return expr.Connector{
		Spec: expr.ConnectorSpec{
			Name:        name,
			Direction:   dir,
			Multi:       multi,
			LengthLimit: connector.Unbounded,
		},
	}
}

func mustParseExpression(src string) expr.Exp {
	e, err := ParseExpression(src)
	if err != nil {
		panic(fmt.Sprintf("dict: invalid builtin expression %q: %v", src, err))
	}
	return e
}
