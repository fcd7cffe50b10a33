package dict

import "fmt"

// SyntaxError reports a malformed expression string passed to
// ParseExpression or MemDictionary.AddWord.
type SyntaxError struct {
	Kind    string
	Message string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("dict syntax error (%v): %v", e.Kind, e.Message)
}
