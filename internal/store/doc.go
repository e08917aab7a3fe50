// Package store persists production runs and delivered episodes in SQLite.
//
// A run row is created when a production run starts and finalized when it
// terminates; episode rows are appended as each episode is delivered, so a
// crash mid-run loses at most the episode in flight. The orchestrator core
// never touches the store; the CLI layer persists through the delivery hook.
package store
