// Package sentence implements the driver that orchestrates every other
// package end to end for one sentence: tokenize, build per-word
// expressions, prune, compile disjuncts, alternate power/PP pruning,
// index, count, extract, post-process, and rank. It owns the sentence's
// string pool, resource budget, and RNG the way an orchestration layer
// over an interface owns a query's context and result accumulation.
package sentence

import (
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/linkgrammar-go/lgcore/internal/count"
	"github.com/linkgrammar-go/lgcore/internal/dict"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/expr"
	"github.com/linkgrammar-go/lgcore/internal/link"
	"github.com/linkgrammar-go/lgcore/internal/match"
	"github.com/linkgrammar-go/lgcore/internal/metrics"
	"github.com/linkgrammar-go/lgcore/internal/options"
	"github.com/linkgrammar-go/lgcore/internal/parseset"
	"github.com/linkgrammar-go/lgcore/internal/postprocess"
	"github.com/linkgrammar-go/lgcore/internal/prune"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
	"github.com/linkgrammar-go/lgcore/internal/wordgraph"
)

// Result is everything a completed parse produces: every extracted
// linkage (already post-processed and sorted) plus whether the parser
// had to give up early on its resource budget.
type Result struct {
	Linkages  []*link.Linkage
	Exhausted bool
}

// Parser runs sentences against one Dictionary. It is safe to reuse
// across many calls to Parse; each call gets its own string pool and
// arenas, so sentences never share state.
type Parser struct {
	dict    dict.Dictionary
	opts    options.Options
	log     *slog.Logger
	metrics metrics.Recorder
}

// New builds a Parser. A nil logger defaults to slog.Default(); a nil
// Recorder defaults to metrics.Noop{}.
func New(d dict.Dictionary, opts options.Options, log *slog.Logger, rec metrics.Recorder) *Parser {
	if log == nil {
		log = slog.Default()
	}
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Parser{dict: d, opts: opts, log: log, metrics: rec}
}

// prepared holds everything built once per sentence, shared by Parse
// and RandomLinkage so neither has to re-tokenize or re-prune.
type prepared struct {
	pool     *strpool.Pool
	words    [][]disjunct.Disjunct
	idx      *match.Index
	rs       *postprocess.RuleState
	surfaces []string
	deadline time.Time
}

func (p *Parser) prepare(text string, start time.Time) (*prepared, error) {
	pool := strpool.New()
	g := wordgraph.New(pool)
	if err := wordgraph.Tokenize(p.dict, g, text, wordgraph.Options{SpellGuess: p.opts.UseSpellGuess}); err != nil {
		return nil, err
	}
	wordArr := wordgraph.Flatten(g)
	p.log.Debug("tokenized", "words", len(wordArr))

	exprs := p.buildExpressions(pool, g, wordArr)
	exprs = prune.Expressions(exprs)
	words := p.compileDisjuncts(pool, exprs)

	rs := postprocess.NewRuleState(p.dict.PostProcessRules())
	prune.Alternate(pool, rs, words)

	idx := match.Build(pool, words)

	var deadline time.Time
	if p.opts.MaxParseTime > 0 {
		deadline = start.Add(p.opts.MaxParseTime)
	}

	return &prepared{
		pool:     pool,
		words:    words,
		idx:      idx,
		rs:       rs,
		surfaces: surfaceStrings(pool, g, wordArr),
		deadline: deadline,
	}, nil
}

// Parse runs every pipeline stage over text and returns its ranked
// linkages, up to Options.LinkageLimit, spanning
// [MinNullCount, MaxNullCount].
func (p *Parser) Parse(text string) (*Result, error) {
	start := time.Now()
	defer func() { p.metrics.ObserveParseDuration(time.Since(start).Seconds()) }()

	pr, err := p.prepare(text, start)
	if err != nil {
		return nil, err
	}

	var linkages []*link.Linkage
	exhausted := false

	for n := p.opts.MinNullCount; n <= p.opts.MaxNullCount; n++ {
		if len(linkages) >= p.opts.LinkageLimit {
			break
		}
		c := count.New(pr.pool, pr.idx, pr.words, p.opts.IslandsOk, pr.deadline)
		ps := parseset.New(c, pr.pool, count.SubProblem{LW: -1, RW: len(pr.words), N: n})

		size := ps.Size()
		if c.Exhausted() {
			exhausted = true
		}

		remaining := int64(p.opts.LinkageLimit - len(linkages))
		if size > remaining {
			size = remaining
		}
		for k := int64(0); k < size; k++ {
			ex, ok := ps.Kth(k)
			if !ok {
				break
			}
			lk := buildLinkage(pr.pool, pr.surfaces, ex, n)
			postprocess.Process(pr.rs, lk)
			linkages = append(linkages, lk)
			p.metrics.ObserveNullCount(n)
		}
	}

	if exhausted {
		p.metrics.IncResourceExhausted()
	}
	sortLinkages(linkages, p.opts.CostModel)
	return &Result{Linkages: linkages, Exhausted: exhausted}, nil
}

// RandomLinkage returns one linkage chosen uniformly at random across
// every null count in [MinNullCount, MaxNullCount] (the
// RepeatableRand option controls whether rng should be seeded
// deterministically by the caller). It reports false if the sentence
// has no linkage at all.
func (p *Parser) RandomLinkage(text string, rng *rand.Rand) (*link.Linkage, bool, error) {
	start := time.Now()
	defer func() { p.metrics.ObserveParseDuration(time.Since(start).Seconds()) }()

	pr, err := p.prepare(text, start)
	if err != nil {
		return nil, false, err
	}

	type level struct {
		n     int
		ps    *parseset.ParseSet
		total int64
	}
	var levels []level
	var grandTotal int64
	for n := p.opts.MinNullCount; n <= p.opts.MaxNullCount; n++ {
		c := count.New(pr.pool, pr.idx, pr.words, p.opts.IslandsOk, pr.deadline)
		ps := parseset.New(c, pr.pool, count.SubProblem{LW: -1, RW: len(pr.words), N: n})
		total := ps.Size()
		if total == 0 {
			continue
		}
		levels = append(levels, level{n: n, ps: ps, total: total})
		grandTotal += total
	}
	if grandTotal == 0 {
		return nil, false, nil
	}

	pick := rng.Int64N(grandTotal)
	for _, lvl := range levels {
		if pick >= lvl.total {
			pick -= lvl.total
			continue
		}
		ex, ok := lvl.ps.Kth(pick)
		if !ok {
			return nil, false, nil
		}
		lk := buildLinkage(pr.pool, pr.surfaces, ex, lvl.n)
		postprocess.Process(pr.rs, lk)
		return lk, true, nil
	}
	return nil, false, nil
}

// buildExpressions resolves each flattened word position to a single
// expression: the Or of every dictionary entry of every tokenization
// alternative occupying that position, falling back to the
// dictionary's UNKNOWN-WORD entry. Distinct tokenization alternatives
// at the same position are not mutually exclusive in this simplified
// model.
func (p *Parser) buildExpressions(pool *strpool.Pool, g *wordgraph.Graph, wordArr wordgraph.WordArray) []expr.Exp {
	out := make([]expr.Exp, len(wordArr))
	for i, ids := range wordArr {
		var branches []expr.Exp
		for _, id := range ids {
			n, ok := g.Node(id)
			if !ok {
				continue
			}
			if n.MorphemeType == wordgraph.Empty {
				branches = append(branches, expr.Null{})
				continue
			}
			surface := pool.String(n.Subword)
			for _, e := range p.dict.Lookup(surface) {
				branches = append(branches, e.Expr)
			}
		}
		if len(branches) == 0 {
			for _, e := range p.dict.Lookup(dict.UnknownWord) {
				branches = append(branches, e.Expr)
			}
		}
		switch len(branches) {
		case 0:
			out[i] = expr.Null{}
		case 1:
			out[i] = branches[0]
		default:
			out[i] = expr.Or{Children: branches}
		}
	}
	return out
}

func (p *Parser) compileDisjuncts(pool *strpool.Pool, exprs []expr.Exp) [][]disjunct.Disjunct {
	words := make([][]disjunct.Disjunct, len(exprs))
	for i, e := range exprs {
		words[i] = disjunct.Compile(pool, e, p.opts.DisjunctCost)
	}
	return words
}

// surfaceStrings picks one display string per word position: the first
// tokenization alternative's surface text.
func surfaceStrings(pool *strpool.Pool, g *wordgraph.Graph, wordArr wordgraph.WordArray) []string {
	out := make([]string, len(wordArr))
	for i, ids := range wordArr {
		if len(ids) == 0 {
			continue
		}
		n, ok := g.Node(ids[0])
		if !ok {
			continue
		}
		out[i] = pool.String(n.Subword)
	}
	return out
}

func buildLinkage(pool *strpool.Pool, surfaces []string, ex *parseset.Extraction, nullCount int) *link.Linkage {
	links := make([]link.Link, len(ex.Links))
	copy(links, ex.Links)

	disjuncts := make([]link.WordDisjunct, len(surfaces))
	for i, d := range ex.Disjuncts {
		disjuncts[i] = toWordDisjunct(pool, d)
	}

	return link.New(surfaces, links, disjuncts, nullCount, ex.UnusedWords)
}

func toWordDisjunct(pool *strpool.Pool, d disjunct.Disjunct) link.WordDisjunct {
	wd := link.WordDisjunct{Cost: d.Cost}
	for _, c := range d.LeftJet {
		wd.LeftJet = append(wd.LeftJet, pool.String(c.Name))
	}
	for _, c := range d.RightJet {
		wd.RightJet = append(wd.RightJet, pool.String(c.Name))
	}
	return wd
}

func sortLinkages(linkages []*link.Linkage, model options.CostModel) {
	sort.SliceStable(linkages, func(i, j int) bool {
		a, b := linkages[i], linkages[j]
		if a.ViolationCount() != b.ViolationCount() {
			return a.ViolationCount() < b.ViolationCount()
		}
		if a.Cost.Unused != b.Cost.Unused {
			return a.Cost.Unused < b.Cost.Unused
		}
		if a.Cost.Disjunct != b.Cost.Disjunct {
			return a.Cost.Disjunct < b.Cost.Disjunct
		}
		if model == options.Corpus && a.Cost.Corpus != b.Cost.Corpus {
			return a.Cost.Corpus < b.Cost.Corpus
		}
		return a.Cost.Link < b.Cost.Link
	})
}
