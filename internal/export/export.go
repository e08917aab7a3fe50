// Package export renders delivered episode markdown files to standalone HTML
// pages for sharing outside the toolchain.
package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 42em; margin: 2em auto; padding: 0 1em; font-family: serif; line-height: 1.7; }
pre { white-space: pre-wrap; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML converts episode markdown to a full HTML page.
func HTML(title, markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return fmt.Sprintf(pageTemplate, html.EscapeString(title), buf.String()), nil
}

// File renders a single markdown file next to itself with an .html extension
// and returns the output path.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	page, err := HTML(title, string(data))
	if err != nil {
		return "", err
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}

// Directory renders every .md file in dir and returns the output paths.
func Directory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var outputs []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		out, err := File(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}
