// Package segment splits long-form prose into narrative-aware scene documents.
//
// The splitter groups paragraphs into scene-sized units using lightweight
// boundary heuristics: temporal markers, location transitions, and dialogue
// density. Groups respect configurable minimum and maximum character bounds so
// downstream retrieval works over screenplay-friendly units instead of
// destructive fixed-size chunks.
package segment
