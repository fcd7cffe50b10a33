package expr

import "testing"

func leaf(name string) Exp {
	return Connector{Spec: ConnectorSpec{Name: name}}
}

func TestDisjunctCountClosedForm(t *testing.T) {
	cases := []struct {
		name string
		e    Exp
		want int
	}{
		{"single connector", leaf("S"), 1},
		{"or of three", Or{Children: []Exp{leaf("A"), leaf("B"), leaf("C")}}, 3},
		{"and of two", And{Children: []Exp{leaf("A"), leaf("B")}}, 1},
		{
			"and of two ors",
			And{Children: []Exp{
				Or{Children: []Exp{leaf("A"), leaf("B")}},
				Or{Children: []Exp{leaf("C"), leaf("D"), leaf("E")}},
			}},
			6,
		},
		{"optional", Optional(leaf("A")), 2},
		{"null", Null{}, 1},
	}

	for _, c := range cases {
		if got := DisjunctCount(c.e); got != c.want {
			t.Errorf("%s: DisjunctCount = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestSimplifyCollapsesNullAnd(t *testing.T) {
	e := And{Children: []Exp{leaf("A"), Null{}}}
	got := Simplify(e)
	if got.Kind() != KindNull {
		t.Fatalf("Simplify(And[A, Null]) = %v, want Null", got)
	}
}

func TestSimplifyDropsNullFromOr(t *testing.T) {
	e := Or{Children: []Exp{Null{}, leaf("A")}}
	got := Simplify(e)
	c, ok := got.(Connector)
	if !ok || c.Spec.Name != "A" {
		t.Fatalf("Simplify(Or[Null, A]) = %#v, want Connector A", got)
	}
}

func TestSimplifyAllNullOr(t *testing.T) {
	e := Or{Children: []Exp{Null{}, Null{}}}
	if got := Simplify(e); got.Kind() != KindNull {
		t.Fatalf("Simplify(Or[Null, Null]) = %v, want Null", got)
	}
}

func TestWalkVisitsAllConnectorsInOrder(t *testing.T) {
	e := And{Children: []Exp{
		leaf("A"),
		Or{Children: []Exp{leaf("B"), leaf("C")}},
	}}

	var seen []string
	Walk(e, func(c ConnectorSpec) { seen = append(seen, c.Name) })

	want := []string{"A", "B", "C"}
	if len(seen) != len(want) {
		t.Fatalf("Walk visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", seen, want)
		}
	}
}
