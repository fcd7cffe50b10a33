// Package dict defines the Dictionary interface the core consumes and a
// small in-memory reference implementation used by tests, the CLI demo,
// and the HTTP demo. Reading real affix/regex dictionary files is out of
// scope here; MemDictionary's participle-based expression grammar exists
// only to make fixtures easy to write, not to replace a real dictionary
// loader.
package dict

import (
	"github.com/linkgrammar-go/lgcore/internal/expr"
	"github.com/linkgrammar-go/lgcore/internal/postprocess"
)

// AffixClass names one of the affix classes a dictionary groups strings
// into.
type AffixClass string

const (
	RPUNC      AffixClass = "RPUNC"
	LPUNC      AffixClass = "LPUNC"
	UNITS      AffixClass = "UNITS"
	BULLETS    AffixClass = "BULLETS"
	QUOTES     AffixClass = "QUOTES"
	PRE        AffixClass = "PRE"
	SUF        AffixClass = "SUF"
	MPRE       AffixClass = "MPRE"
	STEMSUBSCR AffixClass = "STEMSUBSCR"
)

// Special words the dictionary may define.
const (
	LeftWall    = "LEFT-WALL"
	RightWall   = "RIGHT-WALL"
	UnknownWord = "UNKNOWN-WORD"
	EmptyWord   = "EMPTY-WORD.zzz"
)

// Entry is one dictionary line: a surface string (which may carry a
// subscript, e.g. "run.v") and the expression tree it maps to.
type Entry struct {
	Surface string
	Expr    expr.Exp
	Source  string
}

// Dictionary is the external collaborator the core consumes. The core
// never writes to it.
type Dictionary interface {
	// Lookup returns every entry defined for word, including subscripted
	// variants. An empty result means the word is not in the dictionary.
	Lookup(word string) []Entry

	// RegexMatch returns the class name of the first dictionary regex
	// word is classified under, if any.
	RegexMatch(word string) (class string, ok bool)

	// AffixClass returns the literal strings in the named affix class.
	AffixClass(class AffixClass) []string

	// PostProcessRules returns the rule sets the post-processor and its
	// disjunct-level pruning pass consume.
	PostProcessRules() postprocess.RuleSet

	// UnlimitedSet reports whether connector name c is exempt from
	// length-limit pruning.
	UnlimitedSet(c string) bool

	// AndableSet reports whether connector name c may be conjoined with
	// itself under power pruning's multi-connector rules.
	AndableSet(c string) bool

	HasEmptyWord() bool
	LeftWallDefined() bool
	RightWallDefined() bool
	UseUnknownWord() bool
}
