package wordgraph

import (
	"maps"
	"slices"

	"github.com/linkgrammar-go/lgcore/internal/strpool"
)

// Graph is the tokenizer DAG: an adjacency-list graph of Gword nodes with
// a single source and sink, keeping parallel out/in adjacency maps per
// node.
type Graph struct {
	Pool *strpool.Pool

	nodes map[NodeID]*Gword
	out   map[NodeID][]NodeID
	in    map[NodeID][]NodeID
	next  NodeID

	Source NodeID
	Sink   NodeID
}

// New creates a graph with only its source and sink infrastructure nodes,
// connected directly (the empty-sentence case). Tokenize splices real
// subword chains in between.
func New(pool *strpool.Pool) *Graph {
	g := &Graph{
		Pool: pool,
		nodes: make(map[NodeID]*Gword),
		out:   make(map[NodeID][]NodeID),
		in:    make(map[NodeID][]NodeID),
	}
	g.Source = g.addInfra("LEFT-WALL")
	g.Sink = g.addInfra("RIGHT-WALL")
	g.addEdge(g.Source, g.Sink)
	return g
}

func (g *Graph) addInfra(label string) NodeID {
	id := g.next
	g.next++
	n := &Gword{
		ID:            id,
		Subword:       g.Pool.Intern(label),
		MorphemeType:  Infrastructure,
		UnsplitWord:   id,
		AlternativeID: id,
	}
	g.nodes[id] = n
	g.out[id] = nil
	g.in[id] = nil
	return id
}

// AddNode inserts a new subword node and returns its ID.
func (g *Graph) AddNode(n Gword) NodeID {
	id := g.next
	g.next++
	n.ID = id
	g.nodes[id] = &n
	g.out[id] = nil
	g.in[id] = nil
	return id
}

func (g *Graph) addEdge(from, to NodeID) {
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
}

// AddEdge connects from -> to. Both endpoints must already exist.
func (g *Graph) AddEdge(from, to NodeID) error {
	if !g.ContainsNode(from) {
		return nodeDoesNotExist(from)
	}
	if !g.ContainsNode(to) {
		return nodeDoesNotExist(to)
	}
	g.addEdge(from, to)
	return nil
}

// RemoveEdge deletes the direct edge from -> to, if present.
func (g *Graph) RemoveEdge(from, to NodeID) {
	g.out[from] = removeID(g.out[from], to)
	g.in[to] = removeID(g.in[to], from)
}

func removeID(s []NodeID, target NodeID) []NodeID {
	out := s[:0]
	for _, id := range s {
		if id != target {
			out = append(out, id)
		}
	}
	return out
}

func (g *Graph) ContainsNode(id NodeID) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *Graph) Node(id NodeID) (*Gword, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

func (g *Graph) Next(id NodeID) []NodeID { return slices.Clone(g.out[id]) }
func (g *Graph) Prev(id NodeID) []NodeID { return slices.Clone(g.in[id]) }

// Nodes returns every node ID in the graph, in no particular order.
func (g *Graph) Nodes() []NodeID {
	return slices.Collect(maps.Keys(g.nodes))
}

// Clone deep-copies the graph's nodes and edges; the clone shares the
// original's strpool.Pool, so interned IDs remain valid across the clone.
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		Pool:   g.Pool,
		nodes:  make(map[NodeID]*Gword, len(g.nodes)),
		out:    make(map[NodeID][]NodeID, len(g.out)),
		in:     make(map[NodeID][]NodeID, len(g.in)),
		next:   g.next,
		Source: g.Source,
		Sink:   g.Sink,
	}
	for id, n := range g.nodes {
		cp := *n
		clone.nodes[id] = &cp
	}
	for id, edges := range g.out {
		clone.out[id] = slices.Clone(edges)
	}
	for id, edges := range g.in {
		clone.in[id] = slices.Clone(edges)
	}
	return clone
}
