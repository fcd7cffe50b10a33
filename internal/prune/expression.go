// Package prune implements the three pruning stages that run before and
// after disjunct compilation: expression pruning (on expr.Exp trees,
// before disjunct compilation), power pruning and post-process pruning
// (on compiled disjuncts, alternating until neither removes anything).
// All three run as sequential fixed-point sweeps over a single sentence,
// rather than concurrent fan-out across composite queries.
package prune

import (
	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/expr"
)

type connKey struct {
	dir  connector.Direction
	name string
}

// Expressions prunes one sentence's per-word expressions to a fixed
// point: a connector is live iff some connector on some word strictly to
// its other side could match it. Dead connectors are purged to Null and
// each word's tree is re-simplified.
func Expressions(words []expr.Exp) []expr.Exp {
	dead := make([]map[connKey]bool, len(words))
	for i := range dead {
		dead[i] = make(map[connKey]bool)
	}

	for {
		before := countDead(dead)
		sweepLeftToRight(words, dead)
		sweepRightToLeft(words, dead)
		if countDead(dead) == before {
			break
		}
	}

	out := make([]expr.Exp, len(words))
	for i, e := range words {
		out[i] = expr.Simplify(purge(e, dead[i]))
	}
	return out
}

func countDead(dead []map[connKey]bool) int {
	n := 0
	for _, m := range dead {
		n += len(m)
	}
	return n
}

// sweepLeftToRight marks `-` connectors dead when nothing to their left
// (accumulated in S as the sweep proceeds) could match them, then feeds
// surviving `+` connectors of the same word into S for words to come.
func sweepLeftToRight(words []expr.Exp, dead []map[connKey]bool) {
	var seen []string
	for i, e := range words {
		specs := collect(e)
		for _, s := range specs {
			if s.Direction != connector.Left {
				continue
			}
			if !anyMatches(s.Name, seen) {
				dead[i][connKey{connector.Left, s.Name}] = true
			}
		}
		for _, s := range specs {
			if s.Direction == connector.Right && !dead[i][connKey{connector.Right, s.Name}] {
				seen = append(seen, s.Name)
			}
		}
	}
}

func sweepRightToLeft(words []expr.Exp, dead []map[connKey]bool) {
	var seen []string
	for i := len(words) - 1; i >= 0; i-- {
		specs := collect(words[i])
		for _, s := range specs {
			if s.Direction != connector.Right {
				continue
			}
			if !anyMatches(s.Name, seen) {
				dead[i][connKey{connector.Right, s.Name}] = true
			}
		}
		for _, s := range specs {
			if s.Direction == connector.Left && !dead[i][connKey{connector.Left, s.Name}] {
				seen = append(seen, s.Name)
			}
		}
	}
}

func collect(e expr.Exp) []expr.ConnectorSpec {
	var out []expr.ConnectorSpec
	expr.Walk(e, func(c expr.ConnectorSpec) { out = append(out, c) })
	return out
}

func anyMatches(name string, seen []string) bool {
	for _, s := range seen {
		if ok, _ := connector.MatchNames(name, s); ok {
			return true
		}
		if ok, _ := connector.MatchNames(s, name); ok {
			return true
		}
	}
	return false
}

// purge replaces every connector leaf dead under this word's dead set
// with Null, preserving tree shape; Expressions calls expr.Simplify
// afterward to collapse the result.
func purge(e expr.Exp, dead map[connKey]bool) expr.Exp {
	switch n := e.(type) {
	case expr.Connector:
		if dead[connKey{n.Spec.Direction, n.Spec.Name}] {
			return expr.Null{NodeCost: n.NodeCost}
		}
		return n
	case expr.And:
		children := make([]expr.Exp, len(n.Children))
		for i, c := range n.Children {
			children[i] = purge(c, dead)
		}
		return expr.And{Children: children, NodeCost: n.NodeCost}
	case expr.Or:
		children := make([]expr.Exp, len(n.Children))
		for i, c := range n.Children {
			children[i] = purge(c, dead)
		}
		return expr.Or{Children: children, NodeCost: n.NodeCost}
	default:
		return e
	}
}
