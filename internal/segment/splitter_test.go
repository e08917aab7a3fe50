package segment

import (
	"strings"
	"testing"
)

func TestSplitEmptyInput(t *testing.T) {
	splitter := NewSplitter(300, 3200)
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"only whitespace", "   \n\n\t\n\n  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if docs := splitter.Split(tt.input, "novel"); len(docs) != 0 {
				t.Fatalf("expected no documents, got %d", len(docs))
			}
		})
	}
}

func TestSplitShortTextYieldsSingleDocument(t *testing.T) {
	splitter := NewSplitter(300, 3200)
	text := "他回到家里。\n\n夜色很深。"
	docs := splitter.Split(text, "novel")
	if len(docs) != 1 {
		t.Fatalf("expected one document, got %d", len(docs))
	}
	if docs[0].Identifier != "novel-scene-0001" {
		t.Fatalf("unexpected identifier %q", docs[0].Identifier)
	}
	if !strings.Contains(docs[0].Text, "他回到家里。") || !strings.Contains(docs[0].Text, "夜色很深。") {
		t.Fatalf("document should contain all paragraphs: %q", docs[0].Text)
	}
}

func TestSplitBoundaryMarkerClosesGroup(t *testing.T) {
	// Filler paragraph long enough to satisfy a small minimum, with no markers.
	filler := strings.Repeat("平静的叙述。", 10)
	boundary := "第二天，他们出发了。"
	text := filler + "\n\n" + boundary + "\n\n" + filler
	splitter := NewSplitter(20, 10000)

	docs := splitter.Split(text, "novel")
	if len(docs) != 2 {
		t.Fatalf("expected boundary to close the first group, got %d documents", len(docs))
	}
	if !strings.Contains(docs[0].Text, boundary) {
		t.Fatalf("boundary paragraph should end the first scene: %q", docs[0].Text)
	}
}

func TestSplitMaxBoundForcesClose(t *testing.T) {
	paragraph := strings.Repeat("长", 250)
	text := strings.Join([]string{paragraph, paragraph, paragraph, paragraph}, "\n\n")
	splitter := NewSplitter(100, 500)

	docs := splitter.Split(text, "novel")
	if len(docs) != 2 {
		t.Fatalf("expected max bound to split into 2 documents, got %d", len(docs))
	}
	for i, doc := range docs {
		if runes := len([]rune(doc.Text)); runes > 501 {
			t.Fatalf("document %d exceeds max bound: %d runes", i, runes)
		}
	}
}

func TestSplitDialogueDensityBoundary(t *testing.T) {
	dialogue := "“走。”“去哪？”“回家。”“现在？”他们说个不停。"
	filler := strings.Repeat("静。", 30)
	text := filler + "\n\n" + dialogue + "\n\n" + filler
	splitter := NewSplitter(10, 10000)

	docs := splitter.Split(text, "style")
	if len(docs) != 2 {
		t.Fatalf("expected dialogue density to close a group, got %d documents", len(docs))
	}
}

func TestSplitIdentifiersAndMetadata(t *testing.T) {
	paragraph := strings.Repeat("字", 80)
	boundary := "随后他们来到了城里。"
	blocks := make([]string, 0, 12)
	for i := 0; i < 6; i++ {
		blocks = append(blocks, paragraph, boundary)
	}
	splitter := NewSplitter(50, 100000)

	docs := splitter.Split(strings.Join(blocks, "\n\n"), "novel")
	if len(docs) < 2 {
		t.Fatalf("expected several documents, got %d", len(docs))
	}
	for i, doc := range docs {
		wantID := "novel-scene-000" + string(rune('1'+i))
		if len(docs) < 10 && doc.Identifier != wantID {
			t.Fatalf("document %d identifier = %q, want %q", i, doc.Identifier, wantID)
		}
		if doc.Metadata["source"] != "novel" {
			t.Fatalf("document %d missing source metadata", i)
		}
		if doc.Metadata["order"] == "" {
			t.Fatalf("document %d missing order metadata", i)
		}
	}
}

func TestSplitReconstructsInput(t *testing.T) {
	paragraphs := []string{
		strings.Repeat("一", 120),
		"第二天，他们出发了。",
		strings.Repeat("二", 120),
		"随后他们回到了家。",
		strings.Repeat("三", 40),
	}
	text := strings.Join(paragraphs, "\n\n")
	splitter := NewSplitter(60, 10000)

	docs := splitter.Split(text, "novel")
	var rebuilt []string
	for _, doc := range docs {
		rebuilt = append(rebuilt, strings.Split(doc.Text, "\n")...)
	}
	if len(rebuilt) != len(paragraphs) {
		t.Fatalf("expected %d paragraphs back, got %d", len(paragraphs), len(rebuilt))
	}
	for i := range paragraphs {
		if rebuilt[i] != paragraphs[i] {
			t.Fatalf("paragraph %d mismatch: %q != %q", i, rebuilt[i], paragraphs[i])
		}
	}
}

func TestSplitTrailingShortBufferEmitted(t *testing.T) {
	boundary := strings.Repeat("话", 100) + "此刻一切都变了。"
	tail := "短尾巴。"
	splitter := NewSplitter(50, 10000)

	docs := splitter.Split(boundary+"\n\n"+tail, "novel")
	if len(docs) != 2 {
		t.Fatalf("expected trailing buffer to be emitted, got %d documents", len(docs))
	}
	if docs[1].Text != tail {
		t.Fatalf("trailing document = %q, want %q", docs[1].Text, tail)
	}
}

func TestSplitNormalizesCRLF(t *testing.T) {
	splitter := NewSplitter(5, 10000)
	docs := splitter.Split("第一段。\r\n\r\n第二段。", "novel")
	if len(docs) == 0 {
		t.Fatal("expected documents")
	}
	for _, doc := range docs {
		if strings.Contains(doc.Text, "\r") {
			t.Fatalf("carriage return should be stripped: %q", doc.Text)
		}
	}
}
