package plan

import (
	"fmt"
	"strings"
)

// outlinePreviewRunes bounds the synopsis synthesized from a top-level
// outline when the blueprint has no episode list.
const outlinePreviewRunes = 200

// EpisodeTask is one unit of planned work describing a single output
// episode. Tasks are immutable once created.
type EpisodeTask struct {
	EpisodeNumber int
	Title         string
	Synopsis      string
	ContentQuery  string
	StyleQuery    string
}

// Plan expands the blueprint into an ordered task list, numbered from 1.
// The result is never empty.
func Plan(blueprint Blueprint) []EpisodeTask {
	if len(blueprint.Episodes) == 0 {
		return []EpisodeTask{synthesizeTask(blueprint)}
	}
	tasks := make([]EpisodeTask, 0, len(blueprint.Episodes))
	for index, episode := range blueprint.Episodes {
		number := episode.EpisodeNumber
		if number <= 0 {
			number = index + 1
		}
		synopsis := firstNonEmpty(episode.Summary, episode.Synopsis, episode.Beats.Join())
		contentQuery := firstNonEmpty(episode.RAGQuery, synopsis, episode.Title)
		styleQuery := firstNonEmpty(episode.StyleQuery, episode.Tone, contentQuery)
		if synopsis == "" {
			synopsis = fmt.Sprintf("第%d集剧情待补全", index+1)
		}
		tasks = append(tasks, EpisodeTask{
			EpisodeNumber: number,
			Title:         firstNonEmpty(episode.Title, fmt.Sprintf("第%d集", index+1)),
			Synopsis:      synopsis,
			ContentQuery:  firstNonEmpty(contentQuery, synopsis),
			StyleQuery:    firstNonEmpty(styleQuery, contentQuery),
		})
	}
	return tasks
}

func synthesizeTask(blueprint Blueprint) EpisodeTask {
	synopsis := truncateRunes(strings.TrimSpace(blueprint.Outline), outlinePreviewRunes)
	if synopsis == "" {
		synopsis = "自动生成集任务"
	}
	return EpisodeTask{
		EpisodeNumber: 1,
		Title:         firstNonEmpty(blueprint.Title, "第1集"),
		Synopsis:      synopsis,
		ContentQuery:  synopsis,
		StyleQuery:    firstNonEmpty(blueprint.StyleKeywords.Join(), synopsis),
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
