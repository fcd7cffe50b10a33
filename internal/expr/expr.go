// Package expr implements the immutable boolean-like expression AST: a
// dictionary entry's formula over connectors, combined with AND and OR,
// each node carrying a non-negative cost. Trees are built once and never
// mutated; pruning (internal/prune) produces new trees rather than
// editing existing ones.
package expr

import "github.com/linkgrammar-go/lgcore/internal/connector"

// Kind tags which variant an Exp node is, the same Kind()-dispatch
// pattern used elsewhere in this codebase for small closed type sets.
type Kind int

const (
	KindConnector Kind = iota
	KindAnd
	KindOr
	KindNull
)

// Exp is the sum type Connector(c) | And([Exp]) | Or([Exp]) | Null.
type Exp interface {
	Kind() Kind
	// Cost is the non-negative cost attached to this node.
	Cost() float64
}

// ConnectorSpec is the leaf-level description of a connector inside an
// expression, before disjunct compilation resolves its name against a
// sentence's string pool.
type ConnectorSpec struct {
	Name      string
	Direction connector.Direction
	Multi     bool
	// LengthLimit caps the span of a link through this connector, or is
	// Unbounded. The reference dictionary (internal/dict) always sets
	// Unbounded, and Options.ShortLength/AllShort are not applied to it.
	LengthLimit int
}

// Connector is a leaf expression node naming a single connector.
type Connector struct {
	Spec     ConnectorSpec
	NodeCost float64
}

func (Connector) Kind() Kind        { return KindConnector }
func (c Connector) Cost() float64   { return c.NodeCost }

// And is a conjunction: every child must be satisfied, and a clause from
// this node is a concatenation of the children's connectors.
type And struct {
	Children []Exp
	NodeCost float64
}

func (And) Kind() Kind      { return KindAnd }
func (a And) Cost() float64 { return a.NodeCost }

// Or is a disjunction: exactly one child is chosen per clause.
type Or struct {
	Children []Exp
	NodeCost float64
}

func (Or) Kind() Kind      { return KindOr }
func (o Or) Cost() float64 { return o.NodeCost }

// Null is the empty expression: it is satisfied trivially and contributes
// no connectors. Pruning collapses dead subtrees to Null.
type Null struct {
	NodeCost float64
}

func (Null) Kind() Kind      { return KindNull }
func (n Null) Cost() float64 { return n.NodeCost }

// Optional wraps e the way the dictionary format's "{e}" syntax does: a
// choice between e and the empty expression, encoded as Or[And[], e] so
// that a pure Or/And tree needs no separate optional tag.
func Optional(e Exp) Exp {
	return Or{Children: []Exp{And{}, e}}
}
