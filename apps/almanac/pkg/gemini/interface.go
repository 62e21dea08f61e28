package gemini

import "context"

type Client interface {
	// Enabled reports whether an API key is configured. When false every
	// caller falls back to its local behaviour without going to the network.
	Enabled() bool
	GenerateText(ctx context.Context, model string, prompt string) (string, error)
	GenerateJSON(
		ctx context.Context,
		model string,
		prompt string,
		schema *Schema,
		dst any,
	) error
}
