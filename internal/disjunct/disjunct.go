// Package disjunct compiles an expr.Exp tree into the flat disjunct list
// a word carries during matching: every clause the expression's And/Or
// structure can produce, split into a left jet and a right jet of
// connectors ordered nearest-to-the-word first.
package disjunct

import (
	"strconv"
	"strings"

	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/expr"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// Disjunct is one way of satisfying a word's expression: a left jet
// (its `-` connectors, nearest first) and a right jet (its `+`
// connectors, nearest first), together with the clause's total cost.
type Disjunct struct {
	LeftJet  []connector.Connector
	RightJet []connector.Connector
	Cost     float64
}

type clause struct {
	cost       float64
	maxcost    float64
	connectors []expr.ConnectorSpec
}

// Compile runs the build(exp) -> clauses algorithm and emits one
// Disjunct per clause whose maxcost is within costCutoff, de-duplicating
// structurally identical disjuncts.
func Compile(pool *strpool.Pool, e expr.Exp, costCutoff float64) []Disjunct {
	clauses := buildClauses(e)

	seen := make(map[string]bool, len(clauses))
	disjuncts := make([]Disjunct, 0, len(clauses))

	for _, c := range clauses {
		if c.maxcost > costCutoff {
			continue
		}
		d := Disjunct{Cost: c.cost}
		for _, spec := range c.connectors {
			conn := connector.New(pool, spec.Name, spec.Direction, spec.Multi, spec.LengthLimit)
			if spec.Direction == connector.Left {
				d.LeftJet = append(d.LeftJet, conn)
			} else {
				d.RightJet = append(d.RightJet, conn)
			}
		}
		reverse(d.LeftJet)

		key := dedupKey(d)
		if seen[key] {
			continue
		}
		seen[key] = true
		disjuncts = append(disjuncts, d)
	}
	return disjuncts
}

// buildClauses implements build(exp) -> list<clause>, adding e's own
// cost to every clause it produces (including clauses produced at
// interior nodes of the recursion).
func buildClauses(e expr.Exp) []clause {
	var out []clause

	switch n := e.(type) {
	case expr.Null:
		out = []clause{{}}

	case expr.Connector:
		out = []clause{{connectors: []expr.ConnectorSpec{n.Spec}}}

	case expr.Or:
		for _, c := range n.Children {
			out = append(out, buildClauses(c)...)
		}

	case expr.And:
		out = []clause{{}}
		for _, c := range n.Children {
			out = cartesianFold(out, buildClauses(c))
		}

	default:
		out = []clause{{}}
	}

	for i := range out {
		out[i].cost += e.Cost()
		if out[i].cost > out[i].maxcost {
			out[i].maxcost = out[i].cost
		}
	}
	return out
}

func cartesianFold(a, b []clause) []clause {
	out := make([]clause, 0, len(a)*len(b))
	for _, ac := range a {
		for _, bc := range b {
			conns := make([]expr.ConnectorSpec, 0, len(ac.connectors)+len(bc.connectors))
			conns = append(conns, ac.connectors...)
			conns = append(conns, bc.connectors...)
			mc := ac.maxcost
			if bc.maxcost > mc {
				mc = bc.maxcost
			}
			out = append(out, clause{cost: ac.cost + bc.cost, maxcost: mc, connectors: conns})
		}
	}
	return out
}

func reverse(cs []connector.Connector) {
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
}

// dedupKey builds a structural-equality key from interned connector IDs
// and flags, standing in for a pointer-equality comparison (strpool.ID
// values are already the interned identity).
func dedupKey(d Disjunct) string {
	var b strings.Builder
	writeJet := func(jet []connector.Connector) {
		for _, c := range jet {
			b.WriteString(strconv.Itoa(int(c.Name)))
			b.WriteByte(byte(c.Direction))
			if c.Multi {
				b.WriteByte('@')
			}
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c.LengthLimit))
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	writeJet(d.LeftJet)
	writeJet(d.RightJet)
	b.WriteString(strconv.FormatFloat(d.Cost, 'g', -1, 64))
	return b.String()
}
