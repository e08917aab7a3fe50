package draft

import (
	"context"

	"scriptforge/internal/plan"
)

// Drafter turns a planned episode task plus retrieved snippets into
// screenplay text. feedback carries reviewer guidance from a failed
// validation attempt and is empty on the first attempt.
type Drafter interface {
	Draft(ctx context.Context, task plan.EpisodeTask, contentSnippets, styleSnippets []string, feedback string) (string, error)
}
