package cover

import (
	"math/rand"

	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/graph"
)

func graphFromEdges(edges ...[2]int) *graph.Graph {
	g := graph.New()
	for _, edge := range edges {
		g.AddEdge(edge[0], edge[1])
	}
	return g
}

func completeGraph(vertices int) *graph.Graph {
	g := graph.New()
	for u := 1; u <= vertices; u++ {
		for v := u + 1; v <= vertices; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

// randomGraph declares vertices 1..vertices and adds every possible edge with the given probability
func randomGraph(vertices int, density float32) *graph.Graph {
	g := graph.New()
	for u := 1; u <= vertices; u++ {
		g.AddVertex(u)
		for v := u + 1; v <= vertices; v++ {
			if rand.Float32() < density {
				g.AddEdge(u, v)
			}
		}
	}
	return g
}

// coverable searches exhaustively for an assignment of the vertices to at most cliques cliques
func coverable(g *graph.Graph, cliques int) bool {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return true
	} else if cliques <= 0 {
		return false
	}

	assignment := make([]int, len(vertices))
	var search func(position int) bool
	search = func(position int) bool {
		if position == len(vertices) {
			return true
		}
		for clique := 1; clique <= cliques; clique++ {
			compatible := true
			for previous := 0; previous < position; previous++ {
				if assignment[previous] == clique && !g.Adjacent(vertices[previous], vertices[position]) {
					compatible = false
					break
				}
			}
			if !compatible {
				continue
			}
			assignment[position] = clique
			if search(position + 1) {
				return true
			}
		}
		return false
	}
	return search(0)
}
