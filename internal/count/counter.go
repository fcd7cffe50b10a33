package count

import (
	"math"
	"time"

	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/match"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// DefaultResourceCheckStride is how many memo misses pass between wall-clock
// budget checks; checking on every miss would itself dominate the cost
// of a large sentence.
const DefaultResourceCheckStride = 4096

// Counter evaluates the counting recursion over one sentence's pruned,
// indexed disjuncts. internal/parseset builds on the same Counter,
// walking Alternatives instead of summing their weights.
type Counter struct {
	pool      *strpool.Pool
	idx       *match.Index
	words     [][]disjunct.Disjunct
	islandsOk bool
	memo      *Table

	deadline  time.Time
	stride    int64
	lookups   int64
	exhausted bool
}

// New builds a Counter. deadline is the wall-clock time after which the
// recursion gives up and returns zero counts for everything still
// unresolved; a zero deadline disables the check.
func New(pool *strpool.Pool, idx *match.Index, words [][]disjunct.Disjunct, islandsOk bool, deadline time.Time) *Counter {
	return &Counter{
		pool:      pool,
		idx:       idx,
		words:     words,
		islandsOk: islandsOk,
		memo:      NewTable(len(words)),
		deadline:  deadline,
		stride:    DefaultResourceCheckStride,
	}
}

// Exhausted reports whether the resource budget was hit during counting,
// meaning the resulting counts are a lower bound, not exact.
func (c *Counter) Exhausted() bool { return c.exhausted }

// Count returns the number of ways to link words lw..rw using exactly n
// null (unlinked interior) words, given outstanding boundary jets lc
// (owned by lw, reaching right) and rc (owned by rw, reaching left).
func (c *Counter) Count(lw, rw int, lc, rc *Jet, n int) int64 {
	if n < 0 || n > rw-lw-1 {
		return 0
	}
	if rw == lw+1 {
		if lc == nil && rc == nil && n == 0 {
			return 1
		}
		return 0
	}

	key := memoKey{LW: lw, RW: rw, LC: refOf(lc), RC: refOf(rc), N: n}
	if v, ok := c.memo.Get(key); ok {
		return v
	}

	c.lookups++
	if c.stride > 0 && c.lookups%c.stride == 0 && c.checkBudget() {
		c.memo.Set(key, 0)
		return 0
	}

	var total int64
	for _, a := range c.alternatives(lw, rw, lc, rc, n) {
		total += a.Weight
	}
	if total > math.MaxInt32 {
		total = math.MaxInt32
	}
	c.memo.Set(key, total)
	return total
}

func (c *Counter) checkBudget() bool {
	if c.deadline.IsZero() {
		return false
	}
	if time.Now().After(c.deadline) {
		c.exhausted = true
	}
	return c.exhausted
}
