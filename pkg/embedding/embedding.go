// Package embedding defines the embedding collaborator backing semantic
// search and the dream engine's merge grouping.
package embedding

import "context"

// Dimensions is the vector width stored in the embedding columns.
const Dimensions = 1536

// Embedder turns text into fixed-width vectors.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}
