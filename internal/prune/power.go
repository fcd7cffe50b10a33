package prune

import (
	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/postprocess"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// Disjuncts implements power pruning: a disjunct dies if its
// shallow left or right connector can never mate with any word actually
// on that side of it. words is indexed by word position and mutated in
// place; the return value reports whether anything was removed.
//
// This checks only each jet's shallow (nearest-to-owner) connector, not
// every connector a jet carries: in link-grammar's own implementation a
// disjunct can only ever be used starting from its shallow connector, so
// an unreachable shallow connector already dooms the whole disjunct, and
// iterating passes to a fixed point lets that cascade to jets whose
// shallow connector only became unreachable once an earlier pass thinned
// a neighboring word.
func Disjuncts(pool *strpool.Pool, words [][]disjunct.Disjunct) bool {
	changed := false
	for {
		removed := false
		for w := range words {
			kept := words[w][:0:0]
			for _, d := range words[w] {
				if reachable(pool, words, w, d) {
					kept = append(kept, d)
				} else {
					removed = true
				}
			}
			words[w] = kept
		}
		if !removed {
			break
		}
		changed = true
	}
	tightenReachBounds(pool, words)
	return changed
}

func reachable(pool *strpool.Pool, words [][]disjunct.Disjunct, w int, d disjunct.Disjunct) bool {
	if len(d.LeftJet) > 0 && !hasMate(pool, words, w, d.LeftJet[0], -1) {
		return false
	}
	if len(d.RightJet) > 0 && !hasMate(pool, words, w, d.RightJet[0], 1) {
		return false
	}
	return true
}

// hasMate reports whether some word strictly to the given side of w
// carries a disjunct whose opposite-direction shallow connector mates
// with c.
func hasMate(pool *strpool.Pool, words [][]disjunct.Disjunct, w int, c connector.Connector, side int) bool {
	for ow := range words {
		if side < 0 && ow >= w {
			continue
		}
		if side > 0 && ow <= w {
			continue
		}
		for _, d := range words[ow] {
			other, ok := shallowMate(d, side)
			if !ok {
				continue
			}
			if mates(pool, c, w, other, ow, side) {
				return true
			}
		}
	}
	return false
}

// shallowMate returns the connector on the other word that could pair
// with a side-`side` connector: a word to the left offers its shallow
// right connector, a word to the right offers its shallow left one.
func shallowMate(d disjunct.Disjunct, side int) (connector.Connector, bool) {
	if side < 0 && len(d.RightJet) > 0 {
		return d.RightJet[0], true
	}
	if side > 0 && len(d.LeftJet) > 0 {
		return d.LeftJet[0], true
	}
	return connector.Connector{}, false
}

func mates(pool *strpool.Pool, c connector.Connector, w int, other connector.Connector, ow int, side int) bool {
	if side < 0 {
		ok, _ := connector.Mate(pool, other, ow, c, w)
		return ok
	}
	ok, _ := connector.Mate(pool, c, w, other, ow)
	return ok
}

// tightenReachBounds sets each surviving shallow connector's
// NearestWord/FarthestWord to the lowest and highest word index an actual
// mate was observed at, whatever the connector's direction (so for a
// left-pointing connector NearestWord is its farther mate), so the
// counting recursion (internal/count) can
// narrow its pivot search instead of scanning the whole span.
func tightenReachBounds(pool *strpool.Pool, words [][]disjunct.Disjunct) {
	for w, ds := range words {
		for i := range ds {
			if len(ds[i].LeftJet) > 0 {
				near, far := reachRange(pool, words, w, ds[i].LeftJet[0], -1)
				ds[i].LeftJet[0].NearestWord = near
				ds[i].LeftJet[0].FarthestWord = far
			}
			if len(ds[i].RightJet) > 0 {
				near, far := reachRange(pool, words, w, ds[i].RightJet[0], 1)
				ds[i].RightJet[0].NearestWord = near
				ds[i].RightJet[0].FarthestWord = far
			}
		}
	}
}

func reachRange(pool *strpool.Pool, words [][]disjunct.Disjunct, w int, c connector.Connector, side int) (nearest, farthest int) {
	first := true
	var lo, hi int
	for ow := range words {
		if side < 0 && ow >= w {
			continue
		}
		if side > 0 && ow <= w {
			continue
		}
		for _, d := range words[ow] {
			other, ok := shallowMate(d, side)
			if !ok || !mates(pool, c, w, other, ow, side) {
				continue
			}
			if first {
				lo, hi = ow, ow
				first = false
				continue
			}
			if ow < lo {
				lo = ow
			}
			if ow > hi {
				hi = ow
			}
		}
	}
	if first {
		// reachable() should already have dropped this disjunct; keep
		// bounds wide open defensively rather than assume it did.
		return 0, connector.Unbounded
	}
	return lo, hi
}

// Alternate runs power pruning and post-process disjunct pruning back
// and forth — power prune, pp prune, power prune, ... — until a round
// leaves both unchanged.
func Alternate(pool *strpool.Pool, rs *postprocess.RuleState, words [][]disjunct.Disjunct) {
	for {
		a := Disjuncts(pool, words)
		b := postprocess.PruneDisjuncts(pool, rs, words)
		if !a && !b {
			return
		}
	}
}
