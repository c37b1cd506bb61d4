package provider

import "context"

// ModelProvider is the capability the pipeline needs from a text-generation
// backend: one prompt in, one raw completion out. Tests substitute canned
// implementations.
type ModelProvider interface {
	ID() string
	Generate(ctx context.Context, userPrompt string) (string, error)
}
