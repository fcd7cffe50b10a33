// Package options implements the parser configuration as an immutable
// Options value built through functional options, the same
// enum-plus-constructor shape used elsewhere in this module for
// query-building types.
package options

import "time"

// CostModel selects how a linkage's CostVector is reduced to a sort key.
type CostModel int

const (
	// VDAL sorts by (violation, unused, disjunct, link) cost only.
	VDAL CostModel = iota
	// Corpus folds CostVector.Corpus in ahead of link cost.
	Corpus
)

// Options is the immutable configuration one Sentence parse runs under.
type Options struct {
	DisjunctCost float64

	MinNullCount int
	MaxNullCount int
	IslandsOk    bool

	ShortLength  int
	AllShort     bool
	TwopassLength int

	LinkageLimit int

	UseSpellGuess   bool
	RepeatableRand  bool
	RandomSeed      uint64

	CostModel          CostModel
	DisplayMorphology  bool

	MaxParseTime time.Duration
	MaxMemory    uint64
}

// Option mutates an Options value during New.
type Option func(*Options)

// New builds an Options value from sane parser defaults, overridden by
// the given Option values in order.
func New(opts ...Option) Options {
	o := Options{
		DisjunctCost:  2.7,
		MinNullCount:  0,
		MaxNullCount:  0,
		IslandsOk:     false,
		ShortLength:   6,
		TwopassLength: 30,
		LinkageLimit:  100,
		CostModel:     VDAL,
		MaxParseTime:  30 * time.Second,
		MaxMemory:     256 << 20,
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithDisjunctCost(cost float64) Option { return func(o *Options) { o.DisjunctCost = cost } }

func WithNullCountRange(min, max int) Option {
	return func(o *Options) { o.MinNullCount, o.MaxNullCount = min, max }
}

func WithIslandsOk(ok bool) Option { return func(o *Options) { o.IslandsOk = ok } }

func WithShortLength(n int) Option { return func(o *Options) { o.ShortLength = n } }

func WithAllShort(on bool) Option { return func(o *Options) { o.AllShort = on } }

func WithTwopassLength(n int) Option { return func(o *Options) { o.TwopassLength = n } }

func WithLinkageLimit(n int) Option { return func(o *Options) { o.LinkageLimit = n } }

func WithSpellGuess(on bool) Option { return func(o *Options) { o.UseSpellGuess = on } }

// WithRepeatableRand makes random linkage extraction deterministic for a
// given sentence, seeded from seed rather than from process entropy.
func WithRepeatableRand(seed uint64) Option {
	return func(o *Options) { o.RepeatableRand = true; o.RandomSeed = seed }
}

func WithCostModel(m CostModel) Option { return func(o *Options) { o.CostModel = m } }

func WithDisplayMorphology(on bool) Option { return func(o *Options) { o.DisplayMorphology = on } }

func WithMaxParseTime(d time.Duration) Option { return func(o *Options) { o.MaxParseTime = d } }

func WithMaxMemory(bytes uint64) Option { return func(o *Options) { o.MaxMemory = bytes } }
