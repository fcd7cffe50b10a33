package count

import (
	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
)

// SubProblem names a counting subproblem: the same five-tuple a memoKey
// carries, but with live *Jet boundary connectors instead of the
// hashable projection, ready to pass straight to Count or Alternatives.
type SubProblem struct {
	LW, RW int
	LC, RC *Jet
	N      int
}

// Alt is one way to account for word lw+1 (the Skip/empty-left-jet
// cases) or one way to pivot the span through word Word using Disjunct
// (the general case): which word and disjunct were used, the null-count
// split charged to each side, the resulting left/right subproblems, and
// Weight, the number of linkages this alternative contributes (the
// product of the two subproblems' counts). internal/parseset walks this
// list to extract a specific linkage instead of only summing weights.
type Alt struct {
	Skip      bool
	TwoSided  bool // true iff both LeftArgs and RightArgs bound a real link
	Word      int
	Disjunct  *disjunct.Disjunct
	LC, RC    *Jet // the boundary jets this alt actually links, if any
	LeftArgs  SubProblem
	RightArgs SubProblem
	Weight    int64
}

// alternatives enumerates every way to resolve count(lw, rw, lc, rc, n)
// one step, mirroring the counting recursion but returning the
// decomposition instead of folding it into a sum.
func (c *Counter) alternatives(lw, rw int, lc, rc *Jet, n int) []Alt {
	if lc == nil && rc == nil {
		return c.skipAlternatives(lw, rw, n)
	}
	return c.pivotAlternatives(lw, rw, lc, rc, n)
}

func (c *Counter) skipAlternatives(lw, rw, n int) []Alt {
	w := lw + 1
	var alts []Alt

	if c.islandsOk || lw != -1 {
		sub := SubProblem{LW: w, RW: rw, N: n - 1}
		if wt := c.Count(sub.LW, sub.RW, sub.LC, sub.RC, sub.N); wt > 0 {
			alts = append(alts, Alt{Skip: true, Word: w, RightArgs: sub, Weight: wt})
		}
	}

	for i := range c.words[w] {
		d := c.words[w][i]
		if len(d.LeftJet) != 0 {
			continue
		}
		head := jetOf(d.RightJet)
		// w links through its right jet; only a disjunct with no
		// connectors at all leaves w unlinked and so uses up a null.
		sub := SubProblem{LW: w, RW: rw, LC: head, N: n}
		if head == nil {
			sub.N = n - 1
		}
		if wt := c.Count(sub.LW, sub.RW, sub.LC, sub.RC, sub.N); wt > 0 {
			alts = append(alts, Alt{Word: w, Disjunct: &d, RightArgs: sub, Weight: wt})
		}
	}
	return alts
}

func (c *Counter) pivotAlternatives(lw, rw int, lc, rc *Jet, n int) []Alt {
	start := lw + 1
	if lc != nil && lc.Head.NearestWord > start {
		start = lc.Head.NearestWord
	}
	end := rw
	if rc != nil && rc.Head.FarthestWord != connector.Unbounded && rc.Head.FarthestWord+1 < end {
		end = rc.Head.FarthestWord + 1
	}

	var alts []Alt
	for w := start; w < end; w++ {
		for _, p := range c.idx.FormMatchList(w, headConn(lc), lw, headConn(rc), rw) {
			d := p.D
			leftHead := jetOf(d.LeftJet)
			rightHead := jetOf(d.RightJet)
			if lc != nil && leftHead == nil {
				continue
			}
			if rc != nil && rightHead == nil {
				continue
			}
			if lc != nil {
				if ok, _ := connector.Mate(c.pool, lc.Head, lw, leftHead.Head, w); !ok {
					continue
				}
			}
			if rc != nil {
				if ok, _ := connector.Mate(c.pool, rightHead.Head, w, rc.Head, rw); !ok {
					continue
				}
			}

			lcNext, leftHeadNext := next(lc), next(leftHead)
			rcNext, rightHeadNext := next(rc), next(rightHead)

			for ln := 0; ln <= n; ln++ {
				rn := n - ln
				leftSub := SubProblem{LW: lw, RW: w, LC: lcNext, RC: leftHeadNext, N: ln}
				left := c.Count(leftSub.LW, leftSub.RW, leftSub.LC, leftSub.RC, leftSub.N)
				if left == 0 {
					continue
				}
				rightSub := SubProblem{LW: w, RW: rw, LC: rightHeadNext, RC: rcNext, N: rn}
				right := c.Count(rightSub.LW, rightSub.RW, rightSub.LC, rightSub.RC, rightSub.N)
				if right == 0 {
					continue
				}
				dd := d
				alts = append(alts, Alt{
					TwoSided: true,
					Word:     w, Disjunct: &dd,
					LC: lc, RC: rc,
					LeftArgs: leftSub, RightArgs: rightSub,
					Weight: left * right,
				})
			}
		}
	}
	return alts
}

// Alternatives is the exported entry point internal/parseset uses; it is
// just alternatives with the rw == lw+1 leaf case (no decomposition)
// handled the same way Count handles it.
func (c *Counter) Alternatives(lw, rw int, lc, rc *Jet, n int) []Alt {
	if n < 0 || n > rw-lw-1 || rw == lw+1 {
		return nil
	}
	return c.alternatives(lw, rw, lc, rc, n)
}
