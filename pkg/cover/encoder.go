package cover

import (
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/graph"
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/sat"
	"github.com/samber/lo"
)

// Clause families in emission order
var constraints = []func(state constraintState) [][]int64{
	coverageConstraints,
	uniquenessConstraints,
	nonAdjacencyConstraints,
}

// Encode builds a CNF formula whose models are exactly the assignments of every vertex of g to one of
// the cliques 1..cliques such that vertices sharing a clique are adjacent.
//
// Vertex ids are used directly as indices, so the formula declares MaxVertex*cliques variables, which is
// |V|*cliques for vertices numbered 1..|V|. A non-positive cliques yields a formula without variables that
// is unsatisfiable as soon as g has a vertex
func Encode(g *graph.Graph, cliques int) sat.SAT {
	return buildSat(g, cliques, newIndexer(cliques))
}

func buildSat(g *graph.Graph, cliques int, indexer indexer) sat.SAT {
	state := newConstraintState(g, cliques, indexer)

	return sat.SAT{
		Variables: uint64(g.MaxVertex()) * uint64(max(cliques, 0)),
		Clauses: lo.FlatMap(constraints, func(constraint func(state constraintState) [][]int64, _ int) [][]int64 {
			return constraint(state)
		}),
	}
}
