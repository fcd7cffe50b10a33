package prune

import (
	"testing"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/expr"
)

func conn(name string, dir connector.Direction) expr.Exp {
	return expr.Connector{Spec: expr.ConnectorSpec{Name: name, Direction: dir, LengthLimit: connector.Unbounded}}
}

func TestExpressionsKillsConnectorWithNoPossibleMate(t *testing.T) {
	// Word 0 offers Ss+, word 1 wants Xx- (never matches Ss+).
	words := []expr.Exp{
		conn("Ss", connector.Right),
		conn("Xx", connector.Left),
	}

	out := Expressions(words)

	if out[0].Kind() != expr.KindNull {
		t.Fatalf("word 0 = %#v, want Null (Ss+ has no mate)", out[0])
	}
	if out[1].Kind() != expr.KindNull {
		t.Fatalf("word 1 = %#v, want Null (Xx- has no mate)", out[1])
	}
}

func TestExpressionsKeepsMatchablePair(t *testing.T) {
	words := []expr.Exp{
		conn("Ss", connector.Right),
		conn("Ss", connector.Left),
	}

	out := Expressions(words)

	if out[0].Kind() != expr.KindConnector {
		t.Fatalf("word 0 = %#v, want surviving Connector", out[0])
	}
	if out[1].Kind() != expr.KindConnector {
		t.Fatalf("word 1 = %#v, want surviving Connector", out[1])
	}
}

func TestExpressionsPrunesOneBranchOfAnOr(t *testing.T) {
	// Word 0: Ss+ or Pp+. Word 1 only offers Ss-, so Pp+ is dead and the
	// Or collapses (via expr.Simplify) to its one surviving branch.
	words := []expr.Exp{
		expr.Or{Children: []expr.Exp{
			conn("Ss", connector.Right),
			conn("Pp", connector.Right),
		}},
		conn("Ss", connector.Left),
	}

	out := Expressions(words)

	c, ok := out[0].(expr.Connector)
	if !ok || c.Spec.Name != "Ss" {
		t.Fatalf("word 0 = %#v, want lone surviving Ss+ connector", out[0])
	}
}
