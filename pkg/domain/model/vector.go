package model

// VectorRecord is one entry of the vector index. ID matches the Fact it was
// derived from; writing an existing ID replaces the stored record.
type VectorRecord struct {
	ID       string
	Values   []float32
	Metadata map[string]string
}

// VectorMatch is one nearest-neighbor query result, ordered by similarity
type VectorMatch struct {
	ID       string
	Score    float32
	Metadata map[string]string
}
