// Package llm provides an OpenRouter chat client for script generation and
// classification.
//
// This package is used by:
//   - Plan step: produce the season blueprint as structured JSON
//   - Draft step: write episode screenplay text
//   - Validate step: classify action-line descriptions as neutral or emotional
//
// # Configuration
//
// Requires api_key and model, and optionally base_url, referer, title and
// timeout. When unconfigured, callers fall back to deterministic local
// behaviour (template drafting and keyword classification).
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.Complete: send system/user prompts, receive plain text.
// Client.CompleteJSON: send system/user prompts, receive a JSON payload.
// Client.ClassifyEmotion: label an action description.
//
// # Retry Behaviour
//
// The client retries on HTTP 408/429/5xx errors and network timeouts with
// exponential backoff (base 1s, max 10s, up to 5 attempts by default). A
// Retry-After header, when present, overrides the computed delay. Context
// cancellation aborts retries immediately.
package llm
