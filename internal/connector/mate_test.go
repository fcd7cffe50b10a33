package connector

import (
	"testing"

	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

func TestMateDirectionsAndLimit(t *testing.T) {
	pool := strpool.New()
	right := New(pool, "Ss", Right, false, Unbounded) // on word 0, points right
	left := New(pool, "S*", Left, false, Unbounded)    // on word 3, points left

	ok, name := Mate(pool, right, 0, left, 3)
	if !ok || name != "Ss" {
		t.Fatalf("Mate(right@0, left@3) = (%v,%q), want (true, %q)", ok, name, "Ss")
	}

	// Same connectors, swapped argument order, must give the same answer.
	ok2, name2 := Mate(pool, left, 3, right, 0)
	if !ok2 || name2 != name {
		t.Fatalf("Mate is not symmetric under argument swap: got (%v,%q)", ok2, name2)
	}

	limited := New(pool, "Ss", Right, false, 2)
	ok3, _ := Mate(pool, limited, 0, left, 3)
	if ok3 {
		t.Fatalf("Mate should fail: span 3 exceeds length limit 2")
	}
}

func TestMateRejectsSameDirection(t *testing.T) {
	pool := strpool.New()
	a := New(pool, "Ss", Right, false, Unbounded)
	b := New(pool, "S*", Right, false, Unbounded)
	if ok, _ := Mate(pool, a, 0, b, 1); ok {
		t.Fatalf("two right-pointing connectors must never mate")
	}
}
