package postprocess

import (
	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/link"
)

// Domain is one post-processing domain: the starter link plus every
// link reached by a depth-first search from its right word that never
// revisits its left word.
type Domain struct {
	Root    int // index into Linkage.Links of the starter link
	Members []int
}

// Process runs post-processing over a single extracted linkage: build
// word-link adjacency, compute domains, then apply the rule families in
// order, stopping at (and recording) the first violation. rs must have
// already been scanned (see RuleState.ScanOnce) against the sentence's
// live connector names.
func Process(rs *RuleState, lk *link.Linkage) {
	adj := buildAdjacency(lk)
	domains := computeDomains(lk, adj)

	if msg, ok := checkContainsOneGlobal(rs, lk); ok {
		lk.Violation = msg
		return
	}
	if msg, ok := checkContainsOne(rs, lk, domains); ok {
		lk.Violation = msg
		return
	}
	if msg, ok := checkContainsNone(rs, lk, domains); ok {
		lk.Violation = msg
		return
	}
	if msg, ok := checkFormACycle(rs, lk); ok {
		lk.Violation = msg
		return
	}
	if msg, ok := checkBounded(rs, lk, domains); ok {
		lk.Violation = msg
		return
	}
}

type adjEdge struct {
	to       int
	linkIdx  int
}

func buildAdjacency(lk *link.Linkage) map[int][]adjEdge {
	adj := make(map[int][]adjEdge, lk.NumWords())
	for i, l := range lk.Links {
		adj[l.LeftWord] = append(adj[l.LeftWord], adjEdge{to: l.RightWord, linkIdx: i})
		adj[l.RightWord] = append(adj[l.RightWord], adjEdge{to: l.LeftWord, linkIdx: i})
	}
	return adj
}

// computeDomains treats every link as a potential domain starter and
// walks from its right word, never stepping back across the link's own
// left word, collecting every link touched along the way.
func computeDomains(lk *link.Linkage, adj map[int][]adjEdge) []Domain {
	domains := make([]Domain, len(lk.Links))
	for i, l := range lk.Links {
		visited := map[int]bool{l.LeftWord: true}
		var members []int
		var walk func(w int)
		walk = func(w int) {
			if visited[w] {
				return
			}
			visited[w] = true
			for _, e := range adj[w] {
				members = append(members, e.linkIdx)
				walk(e.to)
			}
		}
		walk(l.RightWord)
		domains[i] = Domain{Root: i, Members: dedupInts(members)}
	}
	return domains
}

func dedupInts(xs []int) []int {
	seen := map[int]bool{}
	out := xs[:0:0]
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func checkContainsOneGlobal(rs *RuleState, lk *link.Linkage) (string, bool) {
	names := linkNames(lk)
	for i, r := range rs.set.Rules {
		if rs.irrelevant[i] || r.Family != ContainsOneGlobal {
			continue
		}
		if !matchesAny(r.Trigger, names) {
			continue
		}
		if !anyPatternMatches(r.Criteria, names) {
			return "contains-one-global violated by trigger " + r.Trigger, true
		}
	}
	return "", false
}

func checkContainsOne(rs *RuleState, lk *link.Linkage, domains []Domain) (string, bool) {
	for i, r := range rs.set.Rules {
		if rs.irrelevant[i] || r.Family != ContainsOne {
			continue
		}
		for _, d := range domains {
			root := lk.Links[d.Root]
			if ok, _ := matchName(r.Trigger, root.CompositeName); !ok {
				continue
			}
			if !anyMemberMatches(lk, d, r.Criteria) {
				return "contains-one violated in domain rooted at link " + root.CompositeName, true
			}
		}
	}
	return "", false
}

func checkContainsNone(rs *RuleState, lk *link.Linkage, domains []Domain) (string, bool) {
	for i, r := range rs.set.Rules {
		if rs.irrelevant[i] || r.Family != ContainsNone {
			continue
		}
		for _, d := range domains {
			root := lk.Links[d.Root]
			if ok, _ := matchName(r.Trigger, root.CompositeName); !ok {
				continue
			}
			if anyMemberMatches(lk, d, r.Criteria) {
				return "contains-none violated in domain rooted at link " + root.CompositeName, true
			}
		}
	}
	return "", false
}

func checkFormACycle(rs *RuleState, lk *link.Linkage) (string, bool) {
	for i, r := range rs.set.Rules {
		if rs.irrelevant[i] || r.Family != FormACycle {
			continue
		}
		for li, l := range lk.Links {
			if !matchesAny(l.CompositeName, r.Criteria) {
				continue
			}
			if !stillConnected(lk, li) {
				return "form-a-cycle violated removing link " + l.CompositeName, true
			}
		}
	}
	return "", false
}

func checkBounded(rs *RuleState, lk *link.Linkage, domains []Domain) (string, bool) {
	for i, r := range rs.set.Rules {
		if rs.irrelevant[i] || r.Family != Bounded {
			continue
		}
		for _, d := range domains {
			root := lk.Links[d.Root]
			if ok, _ := matchName(r.Trigger, root.CompositeName); !ok {
				continue
			}
			rootWord := root.LeftWord
			for _, mi := range d.Members {
				if lk.Links[mi].LeftWord < rootWord {
					return "bounded violated in domain rooted at link " + root.CompositeName, true
				}
			}
		}
	}
	return "", false
}

// stillConnected reports whether every word touching at least one link
// stays mutually reachable once link index skip is removed from the
// graph. Null/unused words never have an incident link and so are never
// part of this reachability universe; comparing against lk.NumWords()
// instead would wrongly flag any linkage with unlinked words as broken.
func stillConnected(lk *link.Linkage, skip int) bool {
	linked := make(map[int]bool, lk.NumWords())
	adj := make(map[int][]int, lk.NumWords())
	for i, l := range lk.Links {
		linked[l.LeftWord] = true
		linked[l.RightWord] = true
		if i == skip {
			continue
		}
		adj[l.LeftWord] = append(adj[l.LeftWord], l.RightWord)
		adj[l.RightWord] = append(adj[l.RightWord], l.LeftWord)
	}
	if len(linked) == 0 {
		return true
	}

	start := lk.Links[skip].LeftWord
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		w := queue[0]
		queue = queue[1:]
		for _, n := range adj[w] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	for w := range linked {
		if !visited[w] {
			return false
		}
	}
	return true
}

func linkNames(lk *link.Linkage) []string {
	names := make([]string, len(lk.Links))
	for i, l := range lk.Links {
		names[i] = l.CompositeName
	}
	return names
}

func anyMemberMatches(lk *link.Linkage, d Domain, patterns []string) bool {
	for _, mi := range d.Members {
		if matchesAny(lk.Links[mi].CompositeName, patterns) {
			return true
		}
	}
	return false
}

func matchName(pattern, name string) (bool, string) {
	return connector.MatchNames(pattern, name)
}

func anyPatternMatches(patterns, names []string) bool {
	for _, p := range patterns {
		if matchesAny(p, names) {
			return true
		}
	}
	return false
}
