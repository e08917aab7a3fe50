package logging

import (
	"context"
	"log/slog"

	"scriptforge/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for workflow run identifiers.
	FieldRunID = "run_id"
	// FieldEpisode is the standardized structured logging key for 1-based episode numbers.
	FieldEpisode = "episode"
	// FieldState is the standardized structured logging key for workflow state names.
	FieldState = "state"
	// FieldEventType is the standardized structured logging key for machine-readable event labels.
	FieldEventType = "event_type"
	// FieldRetry is the standardized structured logging key for the per-episode retry counter.
	FieldRetry = "retry_count"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if episode, ok := services.EpisodeFromContext(ctx); ok {
		fields = append(fields, slog.Int(FieldEpisode, episode))
	}
	if state, ok := services.StateFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldState, state))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
