package disjunct

import (
	"testing"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/dict"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

func compileExpr(t *testing.T, pool *strpool.Pool, src string, cutoff float64) []Disjunct {
	t.Helper()
	e, err := dict.ParseExpression(src)
	if err != nil {
		t.Fatalf("ParseExpression(%q): %v", src, err)
	}
	return Compile(pool, e, cutoff)
}

func TestCompileOrYieldsOneDisjunctPerBranch(t *testing.T) {
	pool := strpool.New()
	ds := compileExpr(t, pool, "Ss+ or Sp+", 1000)
	if len(ds) != 2 {
		t.Fatalf("got %d disjuncts, want 2", len(ds))
	}
}

func TestCompileAndSplitsJetsByDirection(t *testing.T) {
	pool := strpool.New()
	ds := compileExpr(t, pool, "Wd- & S+", 1000)
	if len(ds) != 1 {
		t.Fatalf("got %d disjuncts, want 1", len(ds))
	}
	d := ds[0]
	if len(d.LeftJet) != 1 || len(d.RightJet) != 1 {
		t.Fatalf("LeftJet=%d RightJet=%d, want 1 and 1", len(d.LeftJet), len(d.RightJet))
	}
	if pool.String(d.LeftJet[0].Name) != "Wd" {
		t.Fatalf("LeftJet[0] = %s, want Wd", pool.String(d.LeftJet[0].Name))
	}
	if pool.String(d.RightJet[0].Name) != "S" {
		t.Fatalf("RightJet[0] = %s, want S", pool.String(d.RightJet[0].Name))
	}
}

func TestLeftJetIsNearestFirst(t *testing.T) {
	pool := strpool.New()
	ds := compileExpr(t, pool, "A- & B- & C+", 1000)
	if len(ds) != 1 {
		t.Fatalf("got %d disjuncts, want 1", len(ds))
	}
	d := ds[0]
	if len(d.LeftJet) != 2 {
		t.Fatalf("LeftJet len = %d, want 2", len(d.LeftJet))
	}
	// Original order is A-, B-; nearest-to-owner-first means B, A.
	if pool.String(d.LeftJet[0].Name) != "B" || pool.String(d.LeftJet[1].Name) != "A" {
		t.Fatalf("LeftJet = [%s, %s], want [B, A]",
			pool.String(d.LeftJet[0].Name), pool.String(d.LeftJet[1].Name))
	}
}

func TestDuplicateDisjunctsCollapse(t *testing.T) {
	pool := strpool.New()
	ds := compileExpr(t, pool, "S+ or S+", 1000)
	if len(ds) != 1 {
		t.Fatalf("got %d disjuncts, want 1 after de-duplication", len(ds))
	}
}

func TestCompileRespectsUnboundedLengthLimit(t *testing.T) {
	pool := strpool.New()
	ds := compileExpr(t, pool, "A+", 1000)
	if len(ds) != 1 || ds[0].RightJet[0].LengthLimit != connector.Unbounded {
		t.Fatalf("expected a single unbounded connector, got %#v", ds)
	}
}
