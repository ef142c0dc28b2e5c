package cover

import (
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/graph"
	"github.com/samber/lo"
)

type constraintState struct {
	graph    *graph.Graph
	indexer  indexer
	vertices []int // Sorted, so that clauses come out in a stable order
	cliques  []int
}

func newConstraintState(g *graph.Graph, cliques int, indexer indexer) constraintState {
	return constraintState{
		graph:    g,
		indexer:  indexer,
		vertices: g.Vertices(),
		cliques:  lo.RangeFrom(1, max(cliques, 0)),
	}
}

// Every vertex belongs to at least one clique. Without cliques this yields an empty clause per vertex
func coverageConstraints(state constraintState) [][]int64 {
	return lo.Map(state.vertices, func(vertex int, _ int) []int64 {
		return lo.Map(state.cliques, func(clique int, _ int) int64 {
			return state.indexer.Index(vertex, clique)
		})
	})
}

// No vertex belongs to two cliques
func uniquenessConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	for _, vertex := range state.vertices {
		for i, clique1 := range state.cliques {
			for _, clique2 := range state.cliques[i+1:] {
				clauses = append(clauses, []int64{
					-state.indexer.Index(vertex, clique1),
					-state.indexer.Index(vertex, clique2),
				})
			}
		}
	}
	return clauses
}

// Two vertices that are not adjacent cannot share a clique
func nonAdjacencyConstraints(state constraintState) [][]int64 {
	clauses := make([][]int64, 0)
	for i, u := range state.vertices {
		for _, v := range state.vertices[i+1:] {
			if state.graph.Adjacent(u, v) {
				continue
			}
			for _, clique := range state.cliques {
				clauses = append(clauses, []int64{
					-state.indexer.Index(u, clique),
					-state.indexer.Index(v, clique),
				})
			}
		}
	}
	return clauses
}
