package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHTMLRendersMarkdown(t *testing.T) {
	page, err := HTML("第1集", "# 第1集 重逢\n\n旁白：夜色渐深。")
	if err != nil {
		t.Fatalf("HTML returned error: %v", err)
	}
	if !strings.Contains(page, "<title>第1集</title>") {
		t.Fatalf("title missing: %q", page)
	}
	if !strings.Contains(page, "<h1>第1集 重逢</h1>") {
		t.Fatalf("heading not rendered: %q", page)
	}
}

func TestDirectoryRendersOnlyMarkdown(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"episode_001.md":        "# 第1集",
		"episode_002.md":        "# 第2集",
		"workflow_summary.json": "{}",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	outputs, err := Directory(dir)
	if err != nil {
		t.Fatalf("Directory returned error: %v", err)
	}
	if len(outputs) != 2 {
		t.Fatalf("expected 2 outputs, got %v", outputs)
	}
	for _, out := range outputs {
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read output: %v", err)
		}
		if !strings.Contains(string(data), "<h1>") {
			t.Fatalf("output %s missing rendered heading", out)
		}
	}
}

func TestFileMissingInput(t *testing.T) {
	if _, err := File(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Fatal("expected error for missing input")
	}
}
