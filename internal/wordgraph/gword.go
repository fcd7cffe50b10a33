// Package wordgraph builds the tokenizer DAG: a graph whose vertex set
// is the subwords a parse may choose among, with a single
// infrastructure source and sink. Construction follows the splitting
// contracts in order (dictionary hit, punctuation stripping, affix
// splits, capitalization, regex classification, spell-guess, unknown
// fallback) and flattens the DAG into a word array for the disjunct
// compiler.
package wordgraph

import "github.com/linkgrammar-go/lgcore/internal/strpool"

// MorphemeType classifies what kind of unit a Gword node represents.
type MorphemeType int

const (
	Word MorphemeType = iota
	Prefix
	Suffix
	Contraction
	Stem
	Empty
	Wall
	Feature
	Infrastructure
	Unknown
)

// Status is a bitset of the classification flags attached to a subword
// node as the tokenizer discovers it.
type Status uint16

const (
	InDict Status = 1 << iota
	RegexMatched
	SpellGuess
	RunOn
	FirstUpper
	Unsplit
	HasAlt
)

func (s Status) Has(f Status) bool { return s&f != 0 }

// NodeID identifies a Gword node within one Graph. It is never reused
// across graphs.
type NodeID int

// Gword is one wordgraph vertex: a single subword produced along one
// tokenization path.
type Gword struct {
	ID           NodeID
	Subword      strpool.ID
	MorphemeType MorphemeType
	Status       Status
	RegexName    string

	// UnsplitWord points to the first subword of the chain this node's
	// token was split into (no node for the whole pre-split token is
	// kept); it points to itself for sentence-level infrastructure nodes
	// and for tokens that were not split.
	UnsplitWord NodeID

	// AlternativeID is the node ID of the first subword of the
	// alternative this node belongs to. Two nodes are part of the same
	// alternative iff this field is equal.
	AlternativeID NodeID
}
