package graph

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/samber/lo"
)

// Edge is an undirected pair of vertices, stored in the orientation it was read
type Edge [2]int

// Graph is an undirected graph given as an edge list. Its vertex set is the union of the edges' endpoints
// plus any vertex declared explicitly through AddVertex
type Graph struct {
	edges     []Edge
	adjacency map[Edge]bool
	vertices  *treeset.Set
}

func New() *Graph {
	return &Graph{
		edges:     make([]Edge, 0),
		adjacency: make(map[Edge]bool),
		vertices:  treeset.NewWithIntComparator(),
	}
}

// AddEdge records the pair (u, v). Duplicated pairs are kept in the edge list, they are merely redundant
func (g *Graph) AddEdge(u, v int) {
	g.edges = append(g.edges, Edge{u, v})
	g.adjacency[Edge{u, v}] = true
	g.adjacency[Edge{v, u}] = true
	g.vertices.Add(u, v)
}

// AddVertex makes v a member of the vertex set even if no edge references it
func (g *Graph) AddVertex(v int) {
	g.vertices.Add(v)
}

// Edges returns the edge list in input order
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Vertices returns the vertex set in ascending order
func (g *Graph) Vertices() []int {
	return lo.Map(g.vertices.Values(), func(value any, _ int) int { return value.(int) })
}

// Order returns the number of vertices
func (g *Graph) Order() int {
	return g.vertices.Size()
}

// MaxVertex returns the largest vertex id, or 0 for an empty graph
func (g *Graph) MaxVertex() int {
	if g.vertices.Empty() {
		return 0
	}
	values := g.vertices.Values()
	return values[len(values)-1].(int)
}

// HasVertex checks whether v belongs to the vertex set
func (g *Graph) HasVertex(v int) bool {
	return g.vertices.Contains(v)
}

// Adjacent checks whether (u, v) or (v, u) is an edge
func (g *Graph) Adjacent(u, v int) bool {
	return g.adjacency[Edge{u, v}]
}
