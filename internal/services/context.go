package services

import "context"

type contextKey string

const (
	runIDKey   contextKey = "run_id"
	episodeKey contextKey = "episode"
	stateKey   contextKey = "state"
)

// WithRunID annotates context with the workflow run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithEpisode annotates context with the 1-based episode number being produced.
func WithEpisode(ctx context.Context, number int) context.Context {
	if number <= 0 {
		return ctx
	}
	return context.WithValue(ctx, episodeKey, number)
}

// EpisodeFromContext extracts the episode number if present.
func EpisodeFromContext(ctx context.Context) (int, bool) {
	v := ctx.Value(episodeKey)
	if n, ok := v.(int); ok && n > 0 {
		return n, true
	}
	return 0, false
}

// WithState annotates context with the workflow state name.
func WithState(ctx context.Context, state string) context.Context {
	if state == "" {
		return ctx
	}
	return context.WithValue(ctx, stateKey, state)
}

// StateFromContext returns the workflow state name if present.
func StateFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(stateKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
