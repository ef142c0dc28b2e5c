package cover

import (
	"slices"

	"github.com/ducleh/Huy-Duc-Le-SAT/pkg/sat"
	"github.com/samber/lo"
)

// Partition maps every clique id in 1..k to its vertices, sorted ascending. Cliques may be empty
type Partition map[int][]int

// Decode turns a model into a partition. Every positive literal puts its vertex into its clique, negative
// literals are ignored. A partial model yields a partial partition; decoding never fails
func Decode(model sat.SATSolution, cliques int) Partition {
	return decode(model, cliques, newIndexer(cliques))
}

func decode(model sat.SATSolution, cliques int, indexer indexer) Partition {
	partition := make(Partition, max(cliques, 0))
	for _, clique := range lo.RangeFrom(1, max(cliques, 0)) {
		partition[clique] = make([]int, 0)
	}
	if cliques <= 0 {
		return partition
	}

	for _, literal := range model {
		if literal <= 0 {
			continue
		}
		vertex, clique := indexer.Attributes(literal)
		partition[clique] = append(partition[clique], vertex)
	}

	for clique := range partition {
		slices.Sort(partition[clique])
	}
	return partition
}
