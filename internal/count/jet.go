package count

import "github.com/linkgrammar-go/lgcore/internal/connector"

// Jet is an outstanding boundary connector together with the rest of its
// owner's jet still behind it — the connector chain link-grammar's own
// count.c threads through the recursion via `->next` rather than
// collapsing a jet to its single shallow connector. Consuming Head still
// leaves Rest available for a second link on the same side, which is how
// one word forms two links through two different connectors (a
// determiner link and a subject/object link on the same noun, say).
type Jet struct {
	Head connector.Connector
	Rest []connector.Connector
}

// NewJet wraps a single connector with no further chain behind it.
func NewJet(c connector.Connector) *Jet {
	return &Jet{Head: c}
}

// jetOf builds a Jet from the head of conns, or returns nil if conns is
// exhausted.
func jetOf(conns []connector.Connector) *Jet {
	if len(conns) == 0 {
		return nil
	}
	return &Jet{Head: conns[0], Rest: conns[1:]}
}

// next advances j past its head: a multi connector stays available for
// another link, otherwise the jet moves on to whatever connector follows
// it (or is exhausted if none remain).
func next(j *Jet) *Jet {
	if j == nil {
		return nil
	}
	if j.Head.Multi {
		return j
	}
	return jetOf(j.Rest)
}

// headConn extracts the bare connector for callers, such as the
// fast-match index, that only need the shallow connector and not the
// chain behind it.
func headConn(j *Jet) *connector.Connector {
	if j == nil {
		return nil
	}
	h := j.Head
	return &h
}
