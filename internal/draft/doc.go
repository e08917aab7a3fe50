// Package draft produces episode screenplay text from a planned task and
// retrieved reference material.
//
// Two drafters exist. TemplateDrafter assembles a deterministic draft from
// the retrieved snippets and is the offline fallback. ModelDrafter prompts a
// configured chat model and is preferred when credentials are present.
// Drafting failure aborts the run; it is never retried internally.
package draft
