// Package services defines shared utilities consumed by the workflow
// orchestrator and the external generation/classification integrations.
//
// Key responsibilities:
//   - Context helpers that stamp run IDs, episode numbers, and workflow state
//     names for logging and tracing.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification (fatal vs recoverable) consistent across components.
//
// Use these helpers when wiring new workflow logic so operational behaviour
// (error handling, observability) stays uniform across the pipeline.
package services
