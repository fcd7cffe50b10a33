package prune

import (
	"testing"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/postprocess"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

func TestDisjunctsKillsUnreachableConnector(t *testing.T) {
	pool := strpool.New()
	// word 0 wants a right-pointing "S" mate; no word ever offers one.
	// word 1's "D" likewise has no right-pointing "D" to its left.
	words := [][]disjunct.Disjunct{
		{{RightJet: []connector.Connector{connector.New(pool, "S", connector.Right, false, connector.Unbounded)}}},
		{{LeftJet: []connector.Connector{connector.New(pool, "D", connector.Left, false, connector.Unbounded)}}},
	}

	changed := Disjuncts(pool, words)
	if !changed {
		t.Fatal("Disjuncts reported no change, want the unmatched S disjunct removed")
	}
	if len(words[0]) != 0 {
		t.Fatalf("word 0 still has %d disjuncts, want 0", len(words[0]))
	}
	if len(words[1]) != 0 {
		t.Fatalf("word 1 still has %d disjuncts, want 0 (its D- has no mate either)", len(words[1]))
	}
}

func TestDisjunctsKeepsMatchablePair(t *testing.T) {
	pool := strpool.New()
	words := [][]disjunct.Disjunct{
		{{RightJet: []connector.Connector{connector.New(pool, "S", connector.Right, false, connector.Unbounded)}}},
		{{LeftJet: []connector.Connector{connector.New(pool, "S", connector.Left, false, connector.Unbounded)}}},
	}

	changed := Disjuncts(pool, words)
	if changed {
		t.Fatal("Disjuncts reported a change, want both disjuncts kept")
	}
	if len(words[0]) != 1 || len(words[1]) != 1 {
		t.Fatalf("expected both words to keep their disjunct, got %v / %v", words[0], words[1])
	}
	if words[0][0].RightJet[0].NearestWord != 1 || words[0][0].RightJet[0].FarthestWord != 1 {
		t.Fatalf("reach bounds not tightened: got near=%d far=%d",
			words[0][0].RightJet[0].NearestWord, words[0][0].RightJet[0].FarthestWord)
	}
}

func TestAlternateConvergesWithPostProcessPruning(t *testing.T) {
	pool := strpool.New()
	words := [][]disjunct.Disjunct{
		{{RightJet: []connector.Connector{connector.New(pool, "S", connector.Right, false, connector.Unbounded)}}},
		{{LeftJet: []connector.Connector{connector.New(pool, "S", connector.Left, false, connector.Unbounded)}}},
	}
	rs := postprocess.NewRuleState(postprocess.RuleSet{})

	Alternate(pool, rs, words)

	if len(words[0]) != 1 || len(words[1]) != 1 {
		t.Fatalf("Alternate over-pruned a satisfiable pair: %v / %v", words[0], words[1])
	}
}
