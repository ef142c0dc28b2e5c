package cover

// indexer interface is design to give a unique index to a (vertex, clique) pair and vice versa.
// Encoding and decoding must share the same instance
type indexer interface {
	// Returns a unique index to a vertex (1-based) assigned to a clique (1-based)
	Index(vertex, clique int) int64
	// Returns the vertex and the clique of a unique index
	Attributes(index int64) (vertex int, clique int)
}

func newIndexer(cliques int) indexer {
	return &indexerImplementation{
		cliques: int64(cliques),
	}
}

type indexerImplementation struct {
	cliques int64
}

func (indexer *indexerImplementation) Index(vertex, clique int) int64 {
	return (int64(vertex)-1)*indexer.cliques + int64(clique)
}

func (indexer *indexerImplementation) Attributes(index int64) (vertex, clique int) {
	index = index - 1
	vertex = int(index/indexer.cliques) + 1
	clique = int(index%indexer.cliques) + 1
	return vertex, clique
}
