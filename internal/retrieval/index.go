package retrieval

import (
	"sort"
	"strings"

	"scriptforge/internal/segment"
)

// Result represents a single retrieved scene sample. Results are ephemeral,
// produced per query, and never persisted.
type Result struct {
	Score    float64
	Text     string
	Metadata map[string]string
}

// side is one independent vector space (content or style).
type side struct {
	documents    []segment.SceneDocument
	fingerprints []*Fingerprint
	idf          map[string]float64
}

func buildSide(documents []segment.SceneDocument) *side {
	s := &side{documents: append([]segment.SceneDocument(nil), documents...)}
	corpus := NewCorpus()
	raw := make([]*Fingerprint, len(s.documents))
	for i, doc := range s.documents {
		fp := NewFingerprint(doc.Text)
		raw[i] = fp
		corpus.Add(fp)
	}
	s.idf = corpus.IDF()
	s.fingerprints = make([]*Fingerprint, len(raw))
	for i, fp := range raw {
		s.fingerprints[i] = fp.WithIDF(s.idf)
	}
	return s
}

func (s *side) retrieve(query string, topK int) []Result {
	if s == nil || len(s.documents) == 0 || strings.TrimSpace(query) == "" || topK <= 0 {
		return nil
	}
	queryFP := NewFingerprint(query).WithIDF(s.idf)
	if queryFP == nil {
		return nil
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(s.documents))
	for i := range s.documents {
		ranked[i] = scored{index: i, score: CosineSimilarity(queryFP, s.fingerprints[i])}
	}
	// Stable sort keeps original document order on score ties.
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	if topK > len(ranked) {
		topK = len(ranked)
	}
	results := make([]Result, 0, topK)
	for _, entry := range ranked[:topK] {
		doc := s.documents[entry.index]
		results = append(results, Result{
			Score:    entry.score,
			Text:     doc.Text,
			Metadata: doc.Metadata,
		})
	}
	return results
}

// DualIndex manages parallel content/style retrieval stores. The index is
// read-only after indexing and safe to share across episodes without
// coordination.
type DualIndex struct {
	content *side
	style   *side
}

// NewDualIndex creates an empty dual index.
func NewDualIndex() *DualIndex {
	return &DualIndex{}
}

// IndexContent builds the content vector space from the provided documents,
// discarding any previously indexed content corpus.
func (d *DualIndex) IndexContent(documents []segment.SceneDocument) {
	d.content = buildSide(documents)
}

// IndexStyle builds the style vector space from the provided documents,
// discarding any previously indexed style corpus.
func (d *DualIndex) IndexStyle(documents []segment.SceneDocument) {
	d.style = buildSide(documents)
}

// ContentDocuments returns the indexed content corpus in original order.
func (d *DualIndex) ContentDocuments() []segment.SceneDocument {
	if d.content == nil {
		return nil
	}
	return append([]segment.SceneDocument(nil), d.content.documents...)
}

// StyleDocuments returns the indexed style corpus in original order.
func (d *DualIndex) StyleDocuments() []segment.SceneDocument {
	if d.style == nil {
		return nil
	}
	return append([]segment.SceneDocument(nil), d.style.documents...)
}

// RetrieveContent returns up to topK content documents ranked by similarity
// to the query, scores descending. An empty query or corpus yields no results.
func (d *DualIndex) RetrieveContent(query string, topK int) []Result {
	return d.content.retrieve(query, topK)
}

// RetrieveStyle returns up to topK style documents ranked by similarity to
// the query, scores descending. An empty query or corpus yields no results.
func (d *DualIndex) RetrieveStyle(query string, topK int) []Result {
	return d.style.retrieve(query, topK)
}
