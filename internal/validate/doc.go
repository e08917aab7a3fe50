// Package validate implements the deterministic screenplay validation
// pipeline.
//
// A pipeline runs a fixed ordered list of independent checks over a draft and
// aggregates failure messages; a draft with zero messages is compliant. Checks
// never return errors for non-compliant drafts -- failure is data, not an
// exception -- so the workflow can route drafts into the revise loop.
//
// The action-emotion check consults an injected classifier and degrades to a
// keyword heuristic when the classifier is unavailable, keeping the pipeline
// fully deterministic offline.
//
// The package also provides the token-count metrics behind the episode length
// report. Token counting and the rune-count length check are deliberately
// separate notions of length with separate configured ranges.
package validate
