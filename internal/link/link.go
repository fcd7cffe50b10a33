// Package link defines the shared Link/Linkage/CostVector data model
// behind the linkage query API, including the unused-word cost
// accounting that mirrors link-grammar's own linkage.c.
package link

import (
	"fmt"
	"strings"
)

// Link is one satisfied connector pair in a linkage.
type Link struct {
	LeftWord      int
	RightWord     int
	LeftName      string
	RightName     string
	CompositeName string
	DomainNames   []string
}

func (l Link) Length() int { return l.RightWord - l.LeftWord }

func (l Link) String() string {
	return fmt.Sprintf("%d-%s-%s-%d", l.LeftWord, l.CompositeName, l.CompositeName, l.RightWord)
}

// CostVector is the tuple a linkage is ranked by.
type CostVector struct {
	Unused   float64
	Disjunct float64
	Link     float64
	Corpus   float64
}

// WordDisjunct names the disjunct a word used in one linkage, for
// disjunct_string/disjunct_cost.
type WordDisjunct struct {
	LeftJet  []string
	RightJet []string
	Cost     float64
}

func (d WordDisjunct) String() string {
	var b strings.Builder
	for _, c := range d.LeftJet {
		fmt.Fprintf(&b, "%s- ", c)
	}
	for i, c := range d.RightJet {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s+", c)
	}
	return b.String()
}

// Linkage is one extracted, post-processed parse of a sentence.
type Linkage struct {
	Words         []string
	Links         []Link
	Disjuncts     []WordDisjunct
	NullCount     int
	unusedWordIdx []int

	Cost      CostVector
	Violation string
}

func New(words []string, links []Link, disjuncts []WordDisjunct, nullCount int, unusedWordIdx []int) *Linkage {
	lk := &Linkage{
		Words:         words,
		Links:         links,
		Disjuncts:     disjuncts,
		NullCount:     nullCount,
		unusedWordIdx: unusedWordIdx,
	}
	lk.Cost.Unused = lk.computeUnusedWordCost()
	lk.Cost.Disjunct = lk.computeDisjunctCost()
	lk.Cost.Link = float64(len(links))
	return lk
}

func (lk *Linkage) NumWords() int { return len(lk.Words) }
func (lk *Linkage) Word(i int) string { return lk.Words[i] }
func (lk *Linkage) NumLinks() int { return len(lk.Links) }
func (lk *Linkage) LinkAt(i int) Link { return lk.Links[i] }

func (lk *Linkage) DisjunctString(i int) string { return lk.Disjuncts[i].String() }
func (lk *Linkage) DisjunctCost(i int) float64  { return lk.Disjuncts[i].Cost }

func (lk *Linkage) CostVector() CostVector { return lk.Cost }

func (lk *Linkage) ViolationName() (string, bool) {
	if lk.Violation == "" {
		return "", false
	}
	return lk.Violation, true
}

// UnusedWords returns the indices of words left without any link (a
// null-linked word); every unused word adds to the cost vector even
// though it contributes no link, mirroring compute_link_cost.
func (lk *Linkage) UnusedWords() []int { return lk.unusedWordIdx }

func (lk *Linkage) computeUnusedWordCost() float64 {
	return float64(len(lk.unusedWordIdx))
}

func (lk *Linkage) computeDisjunctCost() float64 {
	total := 0.0
	for _, d := range lk.Disjuncts {
		total += d.Cost
	}
	return total
}

// ViolationCount is 1 if the linkage was flagged by post-processing, 0
// otherwise; it is the leading field of the default sort key.
func (lk *Linkage) ViolationCount() int {
	if lk.Violation == "" {
		return 0
	}
	return 1
}
