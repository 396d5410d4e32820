package ai

import "context"

// Provider defines the interface for an AI backend. Implementations must
// be safe for concurrent use; tests substitute a deterministic fake.
type Provider interface {
	// Generate sends the prompt to the model and returns the generated text.
	Generate(ctx context.Context, prompt string) (string, error)
}
