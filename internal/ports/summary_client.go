package ports

import "context"

// Contract for delegating summary text generation to an external model.
// Implementations must respect context cancellation; callers bound every
// call with a timeout and fall back to local templates on failure.
type SummaryClient interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
