// Package match implements the fast-match index: one hash table per
// direction, shared by all words of the sentence and keyed by a
// connector's uppercase prefix (each entry records its word), letting the
// counting recursion (internal/count) find candidate partners without
// scanning every disjunct on a word.
package match

import (
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/linkgrammar-go/lgcore/internal/connector"
	"github.com/linkgrammar-go/lgcore/internal/disjunct"
	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// Placement is one (word, disjunct) pair bucketed under a prefix key.
type Placement struct {
	Word int
	D    disjunct.Disjunct
}

// Index is the sentence-wide fast-match structure. It is built once
// after pruning and queried by every counting subproblem.
type Index struct {
	pool  *strpool.Pool
	left  map[uint64][]Placement // bucketed by the shallow left-jet connector's prefix
	right map[uint64][]Placement // bucketed by the shallow right-jet connector's prefix
}

func prefixKey(s string) uint64 {
	return xxhash.Sum64String(connector.UpperPrefix(s))
}

// Build indexes every disjunct of every word under the prefix of its
// shallowest (nearest-to-owner) connector in each jet. words is indexed
// by word position.
func Build(pool *strpool.Pool, words [][]disjunct.Disjunct) *Index {
	idx := &Index{
		pool:  pool,
		left:  make(map[uint64][]Placement),
		right: make(map[uint64][]Placement),
	}
	for w, ds := range words {
		for _, d := range ds {
			if len(d.LeftJet) > 0 {
				k := prefixKey(pool.String(d.LeftJet[0].Name))
				idx.left[k] = append(idx.left[k], Placement{Word: w, D: d})
			}
			if len(d.RightJet) > 0 {
				k := prefixKey(pool.String(d.RightJet[0].Name))
				idx.right[k] = append(idx.right[k], Placement{Word: w, D: d})
			}
		}
	}
	for k := range idx.left {
		sort.Slice(idx.left[k], func(i, j int) bool { return idx.left[k][i].Word < idx.left[k][j].Word })
	}
	for k := range idx.right {
		sort.Slice(idx.right[k], func(i, j int) bool { return idx.right[k][i].Word > idx.right[k][j].Word })
	}
	return idx
}

// FormMatchList returns every disjunct on word w whose shallow left or
// right connector could mate with lc (arriving from word lw < w) or rc
// (arriving from word rw > w), with duplicates from matching both sides
// eliminated.
func (idx *Index) FormMatchList(w int, lc *connector.Connector, lw int, rc *connector.Connector, rw int) []Placement {
	seen := make(map[[2]*connector.Connector]bool)
	var out []Placement

	add := func(candidates []Placement) {
		for _, p := range candidates {
			if p.Word != w {
				continue
			}
			key := placementKey(p)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, p)
		}
	}

	// lc is the left boundary's outreach connector (owned by a word to
	// w's left, direction Right); it mates with some disjunct's shallow
	// LEFT-jet connector, so it is looked up in the left table. rc is
	// symmetric on the right table.
	if lc != nil {
		k := prefixKey(idx.pool.String(lc.Name))
		add(idx.left[k])
	}
	if rc != nil {
		k := prefixKey(idx.pool.String(rc.Name))
		add(idx.right[k])
	}
	return out
}

// placementKey gives each (word, disjunct) pair a stable identity for
// de-duplication, keyed on pointers to its jets' backing arrays.
func placementKey(p Placement) [2]*connector.Connector {
	var k [2]*connector.Connector
	if len(p.D.LeftJet) > 0 {
		k[0] = &p.D.LeftJet[0]
	}
	if len(p.D.RightJet) > 0 {
		k[1] = &p.D.RightJet[0]
	}
	return k
}
