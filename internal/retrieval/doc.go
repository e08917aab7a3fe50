// Package retrieval provides the dual similarity index backing draft
// generation.
//
// Two independent vector spaces are maintained: a content corpus built from
// the source manuscript and a style corpus built from exemplar screenplays.
// Keeping the spaces separate prevents plot vocabulary from diluting tone and
// register vocabulary, since the two queries serve different generation
// purposes.
//
// Documents and queries are reduced to term-frequency fingerprints weighted by
// inverse document frequency, and ranked by cosine similarity. Tokenization is
// CJK-aware: individual Han runes are tokens, latin and digit runs are tokens,
// and fullwidth forms are normalized before tokenizing.
package retrieval
