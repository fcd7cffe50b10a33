// Package connector implements the typed, directed half-link of the link
// grammar formalism: connector identity, the direction/multi/length-limit
// attributes, and the matching ("mate") and meet ("intersection name")
// rules that decide whether two connectors may form a link.
package connector

import "github.com/linkgrammar-go/lgcore/internal/strpool"

// Direction is the side of a word a connector points toward.
type Direction byte

const (
	// Left means the connector points to a word earlier in the sentence.
	Left Direction = '-'
	// Right means the connector points to a word later in the sentence.
	Right Direction = '+'
)

// Unbounded is the sentinel length limit meaning "no limit."
const Unbounded = -1

// Connector is a directed half-link attached to a word.
//
// Name is interned so that two connectors built from the same literal
// name string compare equal by ID, not by repeated byte comparison.
// NearestWord/FarthestWord are populated by power pruning and are
// meaningless before that pass runs; New leaves them wide open
// (0 and Unbounded).
type Connector struct {
	Name         strpool.ID
	Direction    Direction
	Multi        bool
	LengthLimit  int
	NearestWord  int
	FarthestWord int
}

// New builds a Connector with the given name already interned, the given
// length limit, and reach bounds wide open.
func New(pool *strpool.Pool, name string, dir Direction, multi bool, lengthLimit int) Connector {
	return Connector{
		Name:         pool.Intern(name),
		Direction:    dir,
		Multi:        multi,
		LengthLimit:  lengthLimit,
		NearestWord:  0,
		FarthestWord: Unbounded,
	}
}

// sameIdentity reports whether two connectors share the same identity:
// equal (name, direction, multi).
func sameIdentity(a, b Connector) bool {
	return a.Name == b.Name && a.Direction == b.Direction && a.Multi == b.Multi
}

// Equal reports structural equality used for disjunct de-duplication:
// same interned name, direction, multi flag and length limit.
func Equal(a, b Connector) bool {
	return sameIdentity(a, b) && a.LengthLimit == b.LengthLimit
}
