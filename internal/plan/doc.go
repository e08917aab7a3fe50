// Package plan expands a story blueprint into an ordered list of episode
// tasks.
//
// The blueprint schema is permissive: episode entries may carry any of
// several synonymous summary and query fields, and every field may be absent.
// The planner degrades gracefully through fallback chains and always produces
// at least one task, synthesizing a single task from the top-level outline
// when no episode list is declared.
package plan
