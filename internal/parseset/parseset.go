// Package parseset implements the parse set implied by a sentence's
// counting recursion, and k-th/random linkage extraction over it. It
// walks the same count.Counter.Alternatives decomposition the counting
// recursion itself sums, so no separate enumeration structure needs to
// be built or kept in sync with internal/count.
package parseset

import (
	"math/rand/v2"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/count"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/link"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// OverflowLimit caps the number of linkages a parse set will report as
// countable; beyond it Overflowed reports true and callers should treat
// the sentence as combinatorially exhausted rather than trust Size.
const OverflowLimit = 1 << 24

// ParseSet is the root subproblem count(lw, rw, lc, rc, n) extraction
// draws from.
type ParseSet struct {
	counter *count.Counter
	pool    *strpool.Pool
	root    count.SubProblem
}

// New returns the parse set rooted at the given subproblem, typically
// the whole sentence span with nil boundary connectors.
func New(counter *count.Counter, pool *strpool.Pool, root count.SubProblem) *ParseSet {
	return &ParseSet{counter: counter, pool: pool, root: root}
}

// Size is the number of distinct linkages this parse set contains.
func (ps *ParseSet) Size() int64 {
	return ps.counter.Count(ps.root.LW, ps.root.RW, ps.root.LC, ps.root.RC, ps.root.N)
}

// Overflowed reports whether Size has hit OverflowLimit, meaning the
// true count may be larger than what was actually computed (the
// counting table's own int32 clamp already caps the stored value at
// math.MaxInt32; this is the separate, much lower bound past which
// extraction work itself is not worth attempting).
func (ps *ParseSet) Overflowed() bool {
	return ps.Size() >= OverflowLimit
}

// Extraction is one linkage pulled out of a parse set: every link
// formed, the disjunct each linked word used, and which words were left
// unused (counted null).
type Extraction struct {
	Links       []link.Link
	Disjuncts   map[int]disjunct.Disjunct
	UnusedWords []int
}

func newExtraction() *Extraction {
	return &Extraction{Disjuncts: make(map[int]disjunct.Disjunct)}
}

// Kth extracts the k-th linkage (0-indexed) in a fixed, deterministic
// enumeration order. It reports false if k is out of range.
func (ps *ParseSet) Kth(k int64) (*Extraction, bool) {
	if k < 0 || k >= ps.Size() {
		return nil, false
	}
	ex := newExtraction()
	walk(ps.counter, ps.pool, ps.root, k, ex)
	return ex, true
}

// Random extracts a uniformly random linkage using rng. Callers that
// need repeatable extraction should pass an *rand.Rand built from a
// fixed seed.
func (ps *ParseSet) Random(rng *rand.Rand) (*Extraction, bool) {
	total := ps.Size()
	if total == 0 {
		return nil, false
	}
	k := rng.Int64N(total)
	return ps.Kth(k)
}

// walk descends one subproblem, picking the alternative whose cumulative
// weight range contains k, recording its link and disjunct, and
// recursing into its children with k rebased to their local index.
func walk(c *count.Counter, pool *strpool.Pool, sp count.SubProblem, k int64, ex *Extraction) {
	if sp.RW == sp.LW+1 {
		return
	}
	for _, a := range c.Alternatives(sp.LW, sp.RW, sp.LC, sp.RC, sp.N) {
		if k >= a.Weight {
			k -= a.Weight
			continue
		}
		apply(c, pool, a, sp, k, ex)
		return
	}
}

func apply(c *count.Counter, pool *strpool.Pool, a count.Alt, sp count.SubProblem, k int64, ex *Extraction) {
	if a.Disjunct != nil {
		ex.Disjuncts[a.Word] = *a.Disjunct
	}

	if a.Skip {
		ex.UnusedWords = append(ex.UnusedWords, a.Word)
		walk(c, pool, a.RightArgs, k, ex)
		return
	}

	if !a.TwoSided {
		// The empty-left-jet case: word a.Word links only rightward, with
		// no link formed at this level (that happens deeper, when its own
		// right-jet head becomes some subproblem's rc or lc).
		walk(c, pool, a.RightArgs, k, ex)
		return
	}

	if a.LC != nil {
		leftHead := a.Disjunct.LeftJet[0]
		recordLink(pool, sp.LW, a.Word, a.LC.Head, leftHead, ex)
	}
	if a.RC != nil {
		rightHead := a.Disjunct.RightJet[0]
		recordLink(pool, a.Word, sp.RW, rightHead, a.RC.Head, ex)
	}

	// a.Weight == leftCount * rightCount; decompose k as a
	// (leftIndex, rightIndex) pair with rightCount as the inner stride.
	rightCount := c.Count(a.RightArgs.LW, a.RightArgs.RW, a.RightArgs.LC, a.RightArgs.RC, a.RightArgs.N)

	leftK := k / rightCount
	rightK := k % rightCount
	walk(c, pool, a.LeftArgs, leftK, ex)
	walk(c, pool, a.RightArgs, rightK, ex)
}

// recordLink appends the link formed between a word owning leftConn
// (direction Right) and a word owning rightConn (direction Left).
func recordLink(pool *strpool.Pool, leftWord, rightWord int, leftConn, rightConn connector.Connector, ex *Extraction) {
	ok, meet := connector.Mate(pool, leftConn, leftWord, rightConn, rightWord)
	if !ok {
		return
	}
	ex.Links = append(ex.Links, link.Link{
		LeftWord:      leftWord,
		RightWord:     rightWord,
		LeftName:      pool.String(leftConn.Name),
		RightName:     pool.String(rightConn.Name),
		CompositeName: meet,
	})
}
