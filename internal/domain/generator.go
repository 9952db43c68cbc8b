package domain

import "context"

// Generator is the port to a text-generation model. It receives a single
// prompt and returns the model's free-form reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
