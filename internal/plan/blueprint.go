package plan

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Blueprint is the structured story input driving a production run.
type Blueprint struct {
	Title         string     `json:"title"`
	Outline       string     `json:"outline"`
	StyleKeywords StringList `json:"style_keywords"`
	Episodes      []Episode  `json:"episodes"`
}

// Episode is one entry of the blueprint's episode list. Summary, Synopsis and
// Beats are synonymous sources for the task synopsis, tried in that order.
type Episode struct {
	EpisodeNumber int        `json:"episode_number"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Synopsis      string     `json:"synopsis"`
	Beats         StringList `json:"beats"`
	RAGQuery      string     `json:"rag_query"`
	StyleQuery    string     `json:"style_query"`
	Tone          string     `json:"tone"`
}

// StringList accepts both a JSON string and a JSON array of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = nil
		return nil
	}
	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*s = values
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if strings.TrimSpace(value) == "" {
		*s = nil
		return nil
	}
	*s = StringList{value}
	return nil
}

// Join renders the list as a single query or synopsis string.
func (s StringList) Join() string {
	parts := make([]string, 0, len(s))
	for _, value := range s {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "；")
}

// ParseBlueprint decodes a JSON blueprint document.
func ParseBlueprint(data []byte) (Blueprint, error) {
	var blueprint Blueprint
	if err := json.Unmarshal(data, &blueprint); err != nil {
		return Blueprint{}, fmt.Errorf("parse blueprint: %w", err)
	}
	return blueprint, nil
}
