package parseset

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/count"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/match"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

func buildTwoWordSentence(t *testing.T) (*ParseSet, *strpool.Pool) {
	t.Helper()
	pool := strpool.New()
	words := make([][]disjunct.Disjunct, 3)
	words[1] = []disjunct.Disjunct{{
		LeftJet:  []connector.Connector{connector.New(pool, "S", connector.Left, false, connector.Unbounded)},
		RightJet: []connector.Connector{connector.New(pool, "S", connector.Right, false, connector.Unbounded)},
	}}
	idx := match.Build(pool, words)
	c := count.New(pool, idx, words, true, time.Time{})

	lc := connector.New(pool, "S", connector.Right, false, connector.Unbounded)
	rc := connector.New(pool, "S", connector.Left, false, connector.Unbounded)
	root := count.SubProblem{LW: 0, RW: 2, LC: count.NewJet(lc), RC: count.NewJet(rc), N: 0}
	return New(c, pool, root), pool
}

func buildThreeWordSentenceTwoConnectorsPerSide(t *testing.T) (*ParseSet, *strpool.Pool) {
	t.Helper()
	pool := strpool.New()
	words := make([][]disjunct.Disjunct, 3)
	words[1] = []disjunct.Disjunct{{
		RightJet: []connector.Connector{connector.New(pool, "O", connector.Right, false, connector.Unbounded)},
	}}
	words[2] = []disjunct.Disjunct{{
		LeftJet: []connector.Connector{
			connector.New(pool, "D", connector.Left, false, connector.Unbounded),
			connector.New(pool, "O", connector.Left, false, connector.Unbounded),
		},
	}}
	idx := match.Build(pool, words)
	c := count.New(pool, idx, words, true, time.Time{})

	lc := connector.New(pool, "D", connector.Right, false, connector.Unbounded)
	root := count.SubProblem{LW: 0, RW: 3, LC: count.NewJet(lc), N: 0}
	return New(c, pool, root), pool
}

// TestKthThreadsJetRemainderIntoTwoLinks checks that extraction, not just
// counting, follows a jet remainder past its head connector: word 2 uses
// both its D- and O- connectors in the same linkage, one to the sentence's
// external lc and one to word 1's O+.
func TestKthThreadsJetRemainderIntoTwoLinks(t *testing.T) {
	ps, _ := buildThreeWordSentenceTwoConnectorsPerSide(t)
	if got := ps.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
	ex, ok := ps.Kth(0)
	if !ok {
		t.Fatal("Kth(0) reported out of range on a 1-linkage set")
	}
	if len(ex.Links) != 2 {
		t.Fatalf("got %d links, want 2 (D and O)", len(ex.Links))
	}
	names := map[string]bool{}
	for _, l := range ex.Links {
		names[l.CompositeName] = true
	}
	if !names["D"] || !names["O"] {
		t.Fatalf("expected both D and O composite links, got %v", ex.Links)
	}
}

func TestSizeMatchesCounterDirectly(t *testing.T) {
	ps, _ := buildTwoWordSentence(t)
	if got := ps.Size(); got != 1 {
		t.Fatalf("Size() = %d, want 1", got)
	}
}

func TestKthExtractsTheSingleLinkage(t *testing.T) {
	ps, _ := buildTwoWordSentence(t)
	ex, ok := ps.Kth(0)
	if !ok {
		t.Fatal("Kth(0) reported out of range on a 1-linkage set")
	}
	if len(ex.Links) != 2 {
		t.Fatalf("got %d links, want 2 (lw-pivot and pivot-rw)", len(ex.Links))
	}
	if _, ok := ex.Disjuncts[1]; !ok {
		t.Fatal("expected the pivot word's disjunct to be recorded")
	}
}

func TestKthRejectsOutOfRangeIndex(t *testing.T) {
	ps, _ := buildTwoWordSentence(t)
	if _, ok := ps.Kth(1); ok {
		t.Fatal("Kth(1) should be out of range on a 1-linkage set")
	}
	if _, ok := ps.Kth(-1); ok {
		t.Fatal("Kth(-1) should be rejected")
	}
}

func TestRandomReturnsAValidExtraction(t *testing.T) {
	ps, _ := buildTwoWordSentence(t)
	rng := rand.New(rand.NewPCG(1, 2))
	ex, ok := ps.Random(rng)
	if !ok {
		t.Fatal("Random() failed on a non-empty parse set")
	}
	if len(ex.Links) == 0 {
		t.Fatal("Random() produced an extraction with no links")
	}
}

func TestTrivialParseSetHasOneEmptyLinkage(t *testing.T) {
	pool := strpool.New()
	words := make([][]disjunct.Disjunct, 2)
	idx := match.Build(pool, words)
	c := count.New(pool, idx, words, true, time.Time{})
	ps := New(c, pool, count.SubProblem{LW: 0, RW: 1})

	if got := ps.Size(); got != 1 {
		t.Fatalf("Size() of the trivial adjacent-word set = %d, want 1", got)
	}
	ex, ok := ps.Kth(0)
	if !ok || len(ex.Links) != 0 {
		t.Fatalf("Kth(0) of the trivial set = %+v, ok=%v, want an empty extraction", ex, ok)
	}
}
