package postprocess

import (
	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// RuleState tracks, across the disjuncts of one sentence, which rules
// have been proven irrelevant: their trigger cannot match any connector
// name anywhere in the sentence, so later PP-pruning and post-processing
// passes can skip them, the same irrelevance pruning link-grammar's own
// post-process.c does lazily inside pp_knowledge.
type RuleState struct {
	set        RuleSet
	irrelevant map[int]bool
	scanned    bool
}

func NewRuleState(set RuleSet) *RuleState {
	return &RuleState{set: set, irrelevant: make(map[int]bool)}
}

// ScanOnce marks every rule whose trigger cannot match any name in
// names as irrelevant. Only the first call has any effect, so the
// irrelevance set is computed once per sentence, on the first PP pass.
func (rs *RuleState) ScanOnce(names []string) {
	if rs.scanned {
		return
	}
	rs.scanned = true
	for i, r := range rs.set.Rules {
		if !matchesAny(r.Trigger, names) {
			rs.irrelevant[i] = true
		}
	}
}

func matchesAny(pattern string, names []string) bool {
	for _, n := range names {
		if ok, _ := connector.MatchNames(pattern, n); ok {
			return true
		}
	}
	return false
}

// PruneDisjuncts builds a multiset of connector names over surviving
// disjuncts, removes any disjunct carrying a connector that triggers a
// non-satisfiable "contains-one"-family rule, and repeats until a pass
// removes nothing. words is mutated in place.
func PruneDisjuncts(pool *strpool.Pool, rs *RuleState, words [][]disjunct.Disjunct) bool {
	rs.ScanOnce(allNames(pool, words))

	changed := false
	for {
		multiset := countNames(pool, words)
		removedAny := false

		for wi, ds := range words {
			kept := ds[:0:0]
			for _, d := range ds {
				if triggersUnsatisfiableRule(pool, rs, d, multiset) {
					removedAny = true
					changed = true
					continue
				}
				kept = append(kept, d)
			}
			words[wi] = kept
		}

		if !removedAny {
			break
		}
	}
	return changed
}

func triggersUnsatisfiableRule(pool *strpool.Pool, rs *RuleState, d disjunct.Disjunct, multiset map[string]int) bool {
	for i, r := range rs.set.Rules {
		if rs.irrelevant[i] {
			continue
		}
		if r.Family != ContainsOneGlobal && r.Family != ContainsOne {
			continue
		}
		if !disjunctTriggers(pool, d, r.Trigger) {
			continue
		}
		if !satisfiable(r, multiset) {
			return true
		}
	}
	return false
}

func disjunctTriggers(pool *strpool.Pool, d disjunct.Disjunct, trigger string) bool {
	for _, c := range d.LeftJet {
		if ok, _ := connector.MatchNames(trigger, pool.String(c.Name)); ok {
			return true
		}
	}
	for _, c := range d.RightJet {
		if ok, _ := connector.MatchNames(trigger, pool.String(c.Name)); ok {
			return true
		}
	}
	return false
}

// satisfiable implements the "at least one criterion appears" test: a
// criterion is present iff some live connector name matches its
// uppercase-prefix pattern.
func satisfiable(r Rule, multiset map[string]int) bool {
	for _, crit := range r.Criteria {
		for name, count := range multiset {
			if count == 0 {
				continue
			}
			if ok, _ := connector.MatchNames(crit, name); ok {
				return true
			}
		}
	}
	return false
}

func allNames(pool *strpool.Pool, words [][]disjunct.Disjunct) []string {
	seen := map[string]bool{}
	var out []string
	add := func(n string) {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, ds := range words {
		for _, d := range ds {
			for _, c := range d.LeftJet {
				add(pool.String(c.Name))
			}
			for _, c := range d.RightJet {
				add(pool.String(c.Name))
			}
		}
	}
	return out
}

func countNames(pool *strpool.Pool, words [][]disjunct.Disjunct) map[string]int {
	m := map[string]int{}
	for _, ds := range words {
		for _, d := range ds {
			for _, c := range d.LeftJet {
				m[pool.String(c.Name)]++
			}
			for _, c := range d.RightJet {
				m[pool.String(c.Name)]++
			}
		}
	}
	return m
}
