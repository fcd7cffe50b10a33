package dict

import (
	"testing"

	"github.com/linkgrammar-go/lgcore/internal/expr"
)

func TestAddWordAndLookup(t *testing.T) {
	d := NewMemDictionary()
	if err := d.AddWord("dog.n", "Ds- & {A+} & (Ss+ or Sp+)"); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	entries := d.Lookup("dog")
	if len(entries) != 1 {
		t.Fatalf("Lookup(dog) = %d entries, want 1", len(entries))
	}
	if entries[0].Surface != "dog.n" {
		t.Fatalf("Surface = %q, want dog.n", entries[0].Surface)
	}

	bySubscript := d.Lookup("dog.n")
	if len(bySubscript) != 1 {
		t.Fatalf("Lookup(dog.n) = %d entries, want 1", len(bySubscript))
	}
}

func TestAddWordRejectsBadExpression(t *testing.T) {
	d := NewMemDictionary()
	if err := d.AddWord("bad", "Ss+ & & Sp+"); err == nil {
		t.Fatal("AddWord accepted malformed expression")
	}
}

func TestExpressionShapeMatchesConnectors(t *testing.T) {
	e, err := ParseExpression("Ss+ or Sp+")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	or, ok := e.(expr.Or)
	if !ok || len(or.Children) != 2 {
		t.Fatalf("ParseExpression(Ss+ or Sp+) = %#v, want 2-way Or", e)
	}
}

func TestOptionalGroupParsesAsOrWithEmptyAnd(t *testing.T) {
	e, err := ParseExpression("{A+}")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	or, ok := e.(expr.Or)
	if !ok || len(or.Children) != 2 {
		t.Fatalf("ParseExpression({A+}) = %#v, want Or[And[], Connector]", e)
	}
	if or.Children[0].Kind() != expr.KindAnd {
		t.Fatalf("first branch of optional = %v, want empty And", or.Children[0])
	}
}

func TestMultiConnectorToken(t *testing.T) {
	e, err := ParseExpression("@MX+")
	if err != nil {
		t.Fatalf("ParseExpression: %v", err)
	}
	c, ok := e.(expr.Connector)
	if !ok || !c.Spec.Multi || c.Spec.Name != "MX" {
		t.Fatalf("ParseExpression(@MX+) = %#v, want multi connector MX+", e)
	}
}

func TestWallProbesReflectEntries(t *testing.T) {
	d := NewMemDictionary()
	if d.LeftWallDefined() || d.RightWallDefined() || d.HasEmptyWord() || d.UseUnknownWord() {
		t.Fatal("empty dictionary should have no special words defined")
	}
	if err := d.AddWord(LeftWall, "Wd+"); err != nil {
		t.Fatalf("AddWord(LEFT-WALL): %v", err)
	}
	if !d.LeftWallDefined() {
		t.Fatal("LeftWallDefined() = false after adding LEFT-WALL")
	}
}

func TestAffixAndConnectorSets(t *testing.T) {
	d := NewMemDictionary()
	d.AddAffixClass(RPUNC, ".", "!", "?")
	if got := d.AffixClass(RPUNC); len(got) != 3 {
		t.Fatalf("AffixClass(RPUNC) = %v, want 3 entries", got)
	}

	d.MarkUnlimited("Xc")
	d.MarkAndable("MX")
	if !d.UnlimitedSet("Xc") || d.UnlimitedSet("Ss") {
		t.Fatal("UnlimitedSet did not reflect MarkUnlimited")
	}
	if !d.AndableSet("MX") || d.AndableSet("Ss") {
		t.Fatal("AndableSet did not reflect MarkAndable")
	}
}
