package cover

import (
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/graph"
	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/sat"
	"github.com/samber/lo"
)

// Result of a clique-cover search. Partition is nil unless Status is sat.Satisfiable
type Result struct {
	Status     sat.Status
	Partition  Partition
	Statistics []string // Solver's informational lines
	Variables  uint64
	Clauses    uint64
}

type CliqueCoverer interface {
	// Decides whether the vertices of g can be partitioned into at most cliques cliques and, if so, finds
	// such a partition. The CNF formula is written to formulaPath and left there
	Build(g *graph.Graph, cliques int, formulaPath string) (Result, error)

	// Checks that partition covers every vertex of g exactly once and that each part is a clique of g
	Verify(g *graph.Graph, partition Partition) bool
}

func NewCliqueCoverer(solver sat.SATSolver) CliqueCoverer {
	return &satCliqueCoverer{
		solver: solver,
	}
}

type satCliqueCoverer struct {
	solver sat.SATSolver
}

func (coverer *satCliqueCoverer) Build(g *graph.Graph, cliques int, formulaPath string) (Result, error) {
	indexer := newIndexer(cliques)

	//** Build SAT instance
	satInstance := buildSat(g, cliques, indexer)
	result := Result{
		Status:    sat.Unknown,
		Variables: satInstance.Variables,
		Clauses:   uint64(len(satInstance.Clauses)),
	}

	//** Solve SAT instance
	outcome, err := coverer.solver.Solve(satInstance, formulaPath)
	if err != nil {
		return result, err
	}
	result.Status = outcome.Status
	result.Statistics = outcome.Statistics
	if outcome.Status != sat.Satisfiable {
		return result, nil
	}

	// Acknowledge only variables of actual vertices: with sparse vertex ids the solver is free to set the
	// variables of missing ids to anything
	model := lo.Filter(outcome.Model, func(literal int64, _ int) bool {
		if cliques <= 0 {
			return false
		}
		vertex, _ := indexer.Attributes(max(literal, -literal))
		return g.HasVertex(vertex)
	})

	result.Partition = decode(model, cliques, indexer)
	return result, nil
}

func (coverer *satCliqueCoverer) Verify(g *graph.Graph, partition Partition) bool {
	return verify(g, partition)
}

func verify(g *graph.Graph, partition Partition) bool {
	covered := make(map[int]bool)
	for _, vertices := range partition {
		for i, u := range vertices {
			// Check that:
			// - The vertex belongs to the graph
			// - The vertex was not already placed in a clique
			// - The vertex is adjacent to every other vertex of its clique
			if !g.HasVertex(u) || covered[u] {
				return false
			}
			if lo.SomeBy(vertices[i+1:], func(v int) bool { return !g.Adjacent(u, v) }) {
				return false
			}
			covered[u] = true
		}
	}

	return lo.EveryBy(g.Vertices(), func(vertex int) bool { return covered[vertex] })
}
