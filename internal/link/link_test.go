package link

import "testing"

func TestNewComputesCostVector(t *testing.T) {
	lk := New(
		[]string{"LEFT-WALL", "the", "dog", "RIGHT-WALL"},
		[]Link{{LeftWord: 0, RightWord: 1, CompositeName: "Wd"}, {LeftWord: 1, RightWord: 2, CompositeName: "D"}},
		[]WordDisjunct{{RightJet: []string{"Wd"}, Cost: 0.5}, {LeftJet: []string{"D"}, Cost: 0}},
		0,
		[]int{2},
	)

	if lk.CostVector().Link != 2 {
		t.Fatalf("Link cost = %v, want 2", lk.CostVector().Link)
	}
	if lk.CostVector().Unused != 1 {
		t.Fatalf("Unused cost = %v, want 1", lk.CostVector().Unused)
	}
	if lk.CostVector().Disjunct != 0.5 {
		t.Fatalf("Disjunct cost = %v, want 0.5", lk.CostVector().Disjunct)
	}
	if lk.ViolationCount() != 0 {
		t.Fatal("unflagged linkage should have ViolationCount 0")
	}
}

func TestViolationNameReflectsFlag(t *testing.T) {
	lk := New(nil, nil, nil, 0, nil)
	if _, ok := lk.ViolationName(); ok {
		t.Fatal("fresh linkage should report no violation")
	}
	lk.Violation = "bad-cycle"
	if name, ok := lk.ViolationName(); !ok || name != "bad-cycle" {
		t.Fatalf("ViolationName = %q,%v want bad-cycle,true", name, ok)
	}
	if lk.ViolationCount() != 1 {
		t.Fatal("flagged linkage should have ViolationCount 1")
	}
}
