// Package lgcore is the top-level facade over the dependency-parser
// core: a Dictionary plus Options builds a Parser, and a Parser turns
// sentence text into ranked Linkages. Everything here is a thin
// re-export of internal/sentence, internal/dict, internal/link, and
// internal/options — the facade exists so callers only ever import one
// package.
package lgcore

import (
	"encoding/json"
	"log/slog"
	"math/rand/v2"

	"github.com/linkgrammar-go/lgcore/internal/dict"
	"github.com/linkgrammar-go/lgcore/internal/link"
	"github.com/linkgrammar-go/lgcore/internal/metrics"
	"github.com/linkgrammar-go/lgcore/internal/options"
	"github.com/linkgrammar-go/lgcore/internal/sentence"
)

type (
	Dictionary    = dict.Dictionary
	MemDictionary = dict.MemDictionary
	Entry         = dict.Entry
	AffixClass    = dict.AffixClass

	Options  = options.Options
	Option   = options.Option
	CostModel = options.CostModel

	Recorder = metrics.Recorder

	Linkage      = link.Linkage
	Link         = link.Link
	WordDisjunct = link.WordDisjunct
	CostVector   = link.CostVector

	Result = sentence.Result
)

const (
	VDAL   = options.VDAL
	Corpus = options.Corpus
)

// NewMemDictionary returns an empty in-memory Dictionary fixtures and
// the cmd/ demos build up with AddWord.
func NewMemDictionary() *MemDictionary { return dict.NewMemDictionary() }

// NewOptions builds an Options value; see the With* functions in
// internal/options for every available knob.
func NewOptions(opts ...Option) Options { return options.New(opts...) }

var (
	WithDisjunctCost      = options.WithDisjunctCost
	WithNullCountRange    = options.WithNullCountRange
	WithIslandsOk         = options.WithIslandsOk
	WithShortLength       = options.WithShortLength
	WithAllShort          = options.WithAllShort
	WithTwopassLength     = options.WithTwopassLength
	WithLinkageLimit      = options.WithLinkageLimit
	WithSpellGuess        = options.WithSpellGuess
	WithRepeatableRand    = options.WithRepeatableRand
	WithCostModel         = options.WithCostModel
	WithDisplayMorphology = options.WithDisplayMorphology
	WithMaxParseTime      = options.WithMaxParseTime
	WithMaxMemory         = options.WithMaxMemory
)

// NewPrometheusRecorder builds the default production Recorder; see
// internal/metrics for the registerer it expects.
var NewPrometheusRecorder = metrics.NewPrometheusRecorder

// Parser parses sentences against one Dictionary under one Options
// configuration. It is safe for reuse across sentences.
type Parser struct {
	s *sentence.Parser
}

// New builds a Parser. A nil log defaults to slog.Default(); a nil rec
// discards every metric.
func New(d Dictionary, opts Options, log *slog.Logger, rec Recorder) *Parser {
	return &Parser{s: sentence.New(d, opts, log, rec)}
}

// Parse runs the full pipeline over text and returns its ranked
// linkages, up to Options.LinkageLimit.
func (p *Parser) Parse(text string) (*Result, error) {
	return p.s.Parse(text)
}

// RandomLinkage draws one linkage uniformly at random across every
// satisfiable null count. It reports false if text has no linkage at
// all under the configured Options.
func (p *Parser) RandomLinkage(text string, rng *rand.Rand) (*Linkage, bool, error) {
	return p.s.RandomLinkage(text, rng)
}

// linkageJSON is the wire shape MarshalLinkageJSON and the HTTP demo
// serve; it surfaces exactly the fields a display client needs and
// nothing of the parser's internal extraction state.
type linkageJSON struct {
	Words     []string          `json:"words"`
	Links     []link.Link       `json:"links"`
	Disjuncts []link.WordDisjunct `json:"disjuncts"`
	NullCount int               `json:"null_count"`
	Unused    []int             `json:"unused_words"`
	Cost      link.CostVector   `json:"cost"`
	Violation string            `json:"violation,omitempty"`
}

// MarshalLinkageJSON renders a Linkage the way cmd/lgserver serves it.
func MarshalLinkageJSON(lk *Linkage) ([]byte, error) {
	name, _ := lk.ViolationName()
	return json.Marshal(linkageJSON{
		Words:     lk.Words,
		Links:     lk.Links,
		Disjuncts: lk.Disjuncts,
		NullCount: lk.NullCount,
		Unused:    lk.UnusedWords(),
		Cost:      lk.Cost,
		Violation: name,
	})
}
