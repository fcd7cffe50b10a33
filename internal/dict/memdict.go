package dict

import (
	"regexp"
	"strings"

	"github.com/linkgrammar-go/lgcore/internal/postprocess"
)

type regexRule struct {
	pattern *regexp.Regexp
	class   string
}

// MemDictionary is a small in-memory Dictionary, built up with AddWord,
// AddRegex and AddAffixClass calls. It exists for tests and for the
// cmd/lgparse and cmd/lgserver demos; it is not a dictionary-file reader.
type MemDictionary struct {
	entries map[string][]Entry
	regexes []regexRule
	affix   map[AffixClass][]string
	unlimited map[string]bool
	andable   map[string]bool
	rules     postprocess.RuleSet
}

// NewMemDictionary returns an empty dictionary ready for AddWord calls.
func NewMemDictionary() *MemDictionary {
	return &MemDictionary{
		entries:   make(map[string][]Entry),
		affix:     make(map[AffixClass][]string),
		unlimited: make(map[string]bool),
		andable:   make(map[string]bool),
	}
}

// lookupKey strips a subscript ("run.v" -> "run") so that Lookup by bare
// word finds every sense of it, matching how link-grammar dictionaries
// key on the unsubscripted form.
func lookupKey(surface string) string {
	// A trailing bare "." (no subscript tag after it) is sentence
	// punctuation, not a subscript separator, so it is not stripped:
	// only strip when something follows the dot.
	if i := strings.IndexByte(surface, '.'); i >= 0 && i < len(surface)-1 {
		return surface[:i]
	}
	return surface
}

// AddWord parses exprStr and adds surface -> expr as a dictionary entry,
// indexed under both its full surface form and its unsubscripted base.
func (d *MemDictionary) AddWord(surface, exprStr string) error {
	e, err := ParseExpression(exprStr)
	if err != nil {
		return err
	}
	entry := Entry{Surface: surface, Expr: e, Source: "memdict"}
	key := lookupKey(surface)
	d.entries[key] = append(d.entries[key], entry)
	if key != surface {
		d.entries[surface] = append(d.entries[surface], entry)
	}
	return nil
}

// AddRegex registers a dictionary regex: any word matching pattern that
// has no direct entry is classified under class.
func (d *MemDictionary) AddRegex(pattern, class string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return SyntaxError{Kind: "InvalidRegex", Message: err.Error()}
	}
	d.regexes = append(d.regexes, regexRule{pattern: re, class: class})
	return nil
}

// AddAffixClass appends words to the named affix class.
func (d *MemDictionary) AddAffixClass(class AffixClass, words ...string) {
	d.affix[class] = append(d.affix[class], words...)
}

// MarkUnlimited exempts the named connectors from length-limit pruning.
func (d *MemDictionary) MarkUnlimited(names ...string) {
	for _, n := range names {
		d.unlimited[n] = true
	}
}

// MarkAndable marks the named connectors as eligible for multi-connector
// conjunction under power pruning.
func (d *MemDictionary) MarkAndable(names ...string) {
	for _, n := range names {
		d.andable[n] = true
	}
}

func (d *MemDictionary) Lookup(word string) []Entry {
	return d.entries[lookupKey(word)]
}

func (d *MemDictionary) RegexMatch(word string) (string, bool) {
	for _, r := range d.regexes {
		if r.pattern.MatchString(word) {
			return r.class, true
		}
	}
	return "", false
}

func (d *MemDictionary) AffixClass(class AffixClass) []string {
	return d.affix[class]
}

// SetPostProcessRules installs the rule set PostProcessRules returns.
func (d *MemDictionary) SetPostProcessRules(rules postprocess.RuleSet) {
	d.rules = rules
}

func (d *MemDictionary) PostProcessRules() postprocess.RuleSet {
	return d.rules
}

func (d *MemDictionary) UnlimitedSet(c string) bool { return d.unlimited[c] }
func (d *MemDictionary) AndableSet(c string) bool   { return d.andable[c] }

func (d *MemDictionary) HasEmptyWord() bool      { return len(d.Lookup(EmptyWord)) > 0 }
func (d *MemDictionary) LeftWallDefined() bool   { return len(d.Lookup(LeftWall)) > 0 }
func (d *MemDictionary) RightWallDefined() bool  { return len(d.Lookup(RightWall)) > 0 }
func (d *MemDictionary) UseUnknownWord() bool    { return len(d.Lookup(UnknownWord)) > 0 }

var _ Dictionary = (*MemDictionary)(nil)
