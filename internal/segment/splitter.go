package segment

import (
	"fmt"
	"regexp"
	"strings"
)

// SceneDocument is a single scene extracted from source material. Documents
// are immutable once produced and owned by whichever index stores them.
type SceneDocument struct {
	Identifier string
	Text       string
	Metadata   map[string]string
}

// timeMarkers flag temporal transitions that usually open a new scene.
var timeMarkers = []string{
	"天后",
	"夜里",
	"清晨",
	"傍晚",
	"随后",
	"与此同时",
	"此刻",
	"第二天",
	"三天后",
}

// locationMarkers flag movement into a new place.
var locationMarkers = []string{
	"到了",
	"回到",
	"来到",
	"走进",
}

var locationPattern = regexp.MustCompile(`在\s+.*?(?:里|内|外|旁)`)

var paragraphSplit = regexp.MustCompile(`\n{2,}`)

const dialogueDensityThreshold = 4

// Splitter groups paragraphs into scene documents.
type Splitter struct {
	minSceneChars int
	maxSceneChars int
}

// NewSplitter constructs a Splitter with the provided character bounds.
// Non-positive bounds fall back to permissive values.
func NewSplitter(minSceneChars, maxSceneChars int) *Splitter {
	if minSceneChars <= 0 {
		minSceneChars = 1
	}
	if maxSceneChars <= minSceneChars {
		maxSceneChars = minSceneChars + 1
	}
	return &Splitter{minSceneChars: minSceneChars, maxSceneChars: maxSceneChars}
}

// Split divides text into scene documents labeled with the given source.
// A text with no paragraphs yields an empty result; a text shorter than the
// minimum bound yields exactly one document containing all of it.
func (s *Splitter) Split(text, source string) []SceneDocument {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	raw := paragraphSplit.Split(normalized, -1)
	paragraphs := make([]string, 0, len(raw))
	for _, p := range raw {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}

	groups := s.groupParagraphs(paragraphs)
	documents := make([]SceneDocument, 0, len(groups))
	for index, block := range groups {
		joined := strings.TrimSpace(strings.Join(block, "\n"))
		if joined == "" {
			continue
		}
		documents = append(documents, SceneDocument{
			Identifier: fmt.Sprintf("%s-scene-%04d", source, index+1),
			Text:       joined,
			Metadata: map[string]string{
				"source": source,
				"order":  fmt.Sprintf("%d", index+1),
			},
		})
	}
	return documents
}

// groupParagraphs merges neighbouring paragraphs into scene-sized groups. A
// group closes once it meets the minimum size and the latest paragraph carries
// a boundary signal, or once it reaches the maximum size outright.
func (s *Splitter) groupParagraphs(paragraphs []string) [][]string {
	var groups [][]string
	var buffer []string
	var totalChars int
	for _, paragraph := range paragraphs {
		buffer = append(buffer, paragraph)
		totalChars += len([]rune(paragraph))
		if totalChars < s.minSceneChars {
			continue
		}
		if hasSceneBoundary(paragraph) || totalChars >= s.maxSceneChars {
			groups = append(groups, buffer)
			buffer = nil
			totalChars = 0
		}
	}
	if len(buffer) > 0 {
		groups = append(groups, buffer)
	}
	return groups
}

func hasSceneBoundary(paragraph string) bool {
	for _, marker := range timeMarkers {
		if strings.Contains(paragraph, marker) {
			return true
		}
	}
	for _, marker := range locationMarkers {
		if strings.Contains(paragraph, marker) {
			return true
		}
	}
	if locationPattern.MatchString(paragraph) {
		return true
	}
	return dialogueDensity(paragraph) >= dialogueDensityThreshold
}

// dialogueDensity counts quotation marks as a proxy for dialogue-heavy prose.
func dialogueDensity(paragraph string) int {
	return strings.Count(paragraph, "“") + strings.Count(paragraph, `"`)
}
