package retrieval

import (
	"fmt"
	"testing"

	"scriptforge/internal/segment"
)

func sceneDocs(texts ...string) []segment.SceneDocument {
	docs := make([]segment.SceneDocument, len(texts))
	for i, text := range texts {
		docs[i] = segment.SceneDocument{
			Identifier: fmt.Sprintf("novel-scene-%04d", i+1),
			Text:       text,
			Metadata:   map[string]string{"source": "novel", "order": fmt.Sprintf("%d", i+1)},
		}
	}
	return docs
}

func TestRetrieveEmptyQuery(t *testing.T) {
	index := NewDualIndex()
	index.IndexContent(sceneDocs("主角在城门外等候", "反派在夜里潜入大宅"))

	tests := []string{"", "   ", "\n\t"}
	for _, query := range tests {
		if results := index.RetrieveContent(query, 3); len(results) != 0 {
			t.Fatalf("RetrieveContent(%q) = %d results, want 0", query, len(results))
		}
	}
}

func TestRetrieveEmptyCorpus(t *testing.T) {
	index := NewDualIndex()
	if results := index.RetrieveContent("主角", 3); len(results) != 0 {
		t.Fatalf("expected no results before indexing, got %d", len(results))
	}
	index.IndexContent(nil)
	if results := index.RetrieveContent("主角", 3); len(results) != 0 {
		t.Fatalf("expected no results for empty corpus, got %d", len(results))
	}
}

func TestRetrieveRanksByRelevance(t *testing.T) {
	index := NewDualIndex()
	index.IndexContent(sceneDocs(
		"将军在战场上挥剑，士兵们呐喊着冲锋",
		"侍女在后院里洗衣，阳光洒在井台上",
		"战场边缘，受伤的士兵拖着剑往回走",
	))

	results := index.RetrieveContent("战场上的士兵与剑", 3)
	if len(results) != 3 {
		t.Fatalf("expected all documents ranked, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Fatalf("scores not non-increasing: %v", results)
		}
	}
	if results[len(results)-1].Metadata["order"] != "2" {
		t.Fatalf("expected the laundry scene to rank last, got %+v", results[len(results)-1].Metadata)
	}
}

func TestRetrieveTopKLimits(t *testing.T) {
	index := NewDualIndex()
	index.IndexContent(sceneDocs(
		"夜里他们谈论阴谋",
		"清晨阴谋败露",
		"阴谋的代价在傍晚显现",
	))

	if results := index.RetrieveContent("阴谋", 2); len(results) != 2 {
		t.Fatalf("topK=2 should cap results, got %d", len(results))
	}
	if results := index.RetrieveContent("阴谋", 10); len(results) != 3 {
		t.Fatalf("topK beyond corpus should return all, got %d", len(results))
	}
	if results := index.RetrieveContent("阴谋", 0); len(results) != 0 {
		t.Fatalf("topK=0 should return nothing, got %d", len(results))
	}
}

func TestRetrieveTieBreakByDocumentOrder(t *testing.T) {
	// Identical documents score identically; stable ranking must preserve
	// original order.
	index := NewDualIndex()
	index.IndexContent(sceneDocs("同样的场景", "同样的场景", "同样的场景"))

	results := index.RetrieveContent("同样的场景", 3)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, result := range results {
		want := fmt.Sprintf("%d", i+1)
		if result.Metadata["order"] != want {
			t.Fatalf("result %d order = %q, want %q", i, result.Metadata["order"], want)
		}
	}
}

func TestIndexSidesAreIndependent(t *testing.T) {
	index := NewDualIndex()
	index.IndexContent(sceneDocs("剧情内容：復仇与追逐"))
	index.IndexStyle(sceneDocs("风格样本：短句，强冲突，口语化"))

	if results := index.RetrieveStyle("復仇", 3); len(results) != 0 {
		// 復仇 appears only in the content corpus.
		for _, r := range results {
			if r.Score > 0 {
				t.Fatalf("style side should not score content vocabulary: %+v", r)
			}
		}
	}
	if results := index.RetrieveContent("復仇", 3); len(results) == 0 || results[0].Score <= 0 {
		t.Fatalf("content side should match its own vocabulary, got %+v", results)
	}
}

func TestReindexReplacesCorpus(t *testing.T) {
	index := NewDualIndex()
	index.IndexContent(sceneDocs("旧的故事"))
	index.IndexContent(sceneDocs("新的传说", "另一个新传说"))

	docs := index.ContentDocuments()
	if len(docs) != 2 {
		t.Fatalf("expected replace-all semantics, got %d documents", len(docs))
	}
	results := index.RetrieveContent("旧的故事", 5)
	for _, r := range results {
		if r.Text == "旧的故事" {
			t.Fatal("old corpus should be discarded after re-indexing")
		}
	}
}

func TestRetrieveQueryWithUnknownVocabulary(t *testing.T) {
	index := NewDualIndex()
	index.IndexContent(sceneDocs("夜里他回到家"))

	results := index.RetrieveContent("unrelated latin query", 3)
	// All scores are zero but ranking still returns documents.
	if len(results) != 1 {
		t.Fatalf("expected 1 ranked document, got %d", len(results))
	}
	if results[0].Score != 0 {
		t.Fatalf("expected zero score, got %v", results[0].Score)
	}
}
