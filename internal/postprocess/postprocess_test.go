package postprocess

import (
	"testing"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/link"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

func mkDisjunct(pool *strpool.Pool, right string) disjunct.Disjunct {
	return disjunct.Disjunct{
		RightJet: []connector.Connector{connector.New(pool, right, connector.Right, false, connector.Unbounded)},
	}
}

func TestPruneDisjunctsRemovesUnsatisfiableTrigger(t *testing.T) {
	pool := strpool.New()
	rs := NewRuleState(RuleSet{Rules: []Rule{
		{Family: ContainsOne, Trigger: "SS", Criteria: []string{"QQ"}},
	}})

	words := [][]disjunct.Disjunct{
		{mkDisjunct(pool, "SS")},
	}

	changed := PruneDisjuncts(pool, rs, words)
	if !changed {
		t.Fatal("expected PruneDisjuncts to remove the unsatisfiable disjunct")
	}
	if len(words[0]) != 0 {
		t.Fatalf("words[0] = %v, want empty after pruning", words[0])
	}
}

func TestPruneDisjunctsKeepsSatisfiableTrigger(t *testing.T) {
	pool := strpool.New()
	rs := NewRuleState(RuleSet{Rules: []Rule{
		{Family: ContainsOne, Trigger: "SS", Criteria: []string{"QQ"}},
	}})

	words := [][]disjunct.Disjunct{
		{mkDisjunct(pool, "SS")},
		{mkDisjunct(pool, "QQ")},
	}

	PruneDisjuncts(pool, rs, words)
	if len(words[0]) != 1 || len(words[1]) != 1 {
		t.Fatalf("expected both disjuncts to survive, got %v / %v", words[0], words[1])
	}
}

func TestRuleStateScansIrrelevantOnce(t *testing.T) {
	rs := NewRuleState(RuleSet{Rules: []Rule{
		{Family: ContainsOne, Trigger: "ZZ", Criteria: []string{"QQ"}},
	}})
	rs.ScanOnce([]string{"SS"})
	if !rs.irrelevant[0] {
		t.Fatal("rule with unmatched trigger should be marked irrelevant")
	}
}

func TestProcessFlagsContainsOneGlobalViolation(t *testing.T) {
	rs := NewRuleState(RuleSet{Rules: []Rule{
		{Family: ContainsOneGlobal, Trigger: "MV", Criteria: []string{"QQ"}},
	}})
	rs.ScanOnce([]string{"MV", "D"})

	lk := link.New(
		[]string{"LEFT-WALL", "dogs", "run"},
		[]link.Link{{LeftWord: 0, RightWord: 1, CompositeName: "MV"}, {LeftWord: 1, RightWord: 2, CompositeName: "D"}},
		nil, 0, nil,
	)

	Process(rs, lk)
	if name, ok := lk.ViolationName(); !ok || name == "" {
		t.Fatal("expected a contains-one-global violation to be recorded")
	}
}

func TestProcessAllowsFormACycleWithNullWord(t *testing.T) {
	rs := NewRuleState(RuleSet{Rules: []Rule{
		{Family: FormACycle, Criteria: []string{"S"}},
	}})
	rs.ScanOnce([]string{"Wd", "S"})

	// word 2 ("loudly") is left null; the S link between 0 and 1 still
	// forms no cycle by itself, and the null word must not count against
	// reachability.
	lk := link.New(
		[]string{"LEFT-WALL", "dogs", "loudly"},
		[]link.Link{{LeftWord: 0, RightWord: 1, CompositeName: "Wd"}, {LeftWord: 0, RightWord: 1, CompositeName: "S"}},
		nil, 1, []int{2},
	)

	Process(rs, lk)
	if name, ok := lk.ViolationName(); ok {
		t.Fatalf("null word wrongly counted against form-a-cycle reachability: %s", name)
	}
}

func TestProcessFlagsFormACycleViolation(t *testing.T) {
	rs := NewRuleState(RuleSet{Rules: []Rule{
		{Family: FormACycle, Criteria: []string{"S"}},
	}})
	rs.ScanOnce([]string{"Wd", "S"})

	// removing the S link leaves word 2 unreachable from word 0: the link
	// is load-bearing, not part of a cycle, so form-a-cycle is violated.
	lk := link.New(
		[]string{"LEFT-WALL", "dogs", "run"},
		[]link.Link{{LeftWord: 0, RightWord: 1, CompositeName: "Wd"}, {LeftWord: 1, RightWord: 2, CompositeName: "S"}},
		nil, 0, nil,
	)

	Process(rs, lk)
	if name, ok := lk.ViolationName(); !ok || name == "" {
		t.Fatal("expected a form-a-cycle violation to be recorded")
	}
}

func TestProcessLeavesCleanLinkageUnflagged(t *testing.T) {
	rs := NewRuleState(RuleSet{})
	lk := link.New(
		[]string{"LEFT-WALL", "dogs", "run"},
		[]link.Link{{LeftWord: 0, RightWord: 1, CompositeName: "Wd"}, {LeftWord: 1, RightWord: 2, CompositeName: "S"}},
		nil, 0, nil,
	)
	Process(rs, lk)
	if _, ok := lk.ViolationName(); ok {
		t.Fatal("linkage with no applicable rules should not be flagged")
	}
}
