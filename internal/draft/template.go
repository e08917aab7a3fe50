package draft

import (
	"context"
	"fmt"
	"strings"

	"scriptforge/internal/plan"
)

const maxTemplateScenes = 3

// TemplateDrafter assembles a draft deterministically: one scene per
// retrieved content snippet (capped at three), dialogue lines lifted from the
// matching style snippet, and reviewer feedback echoed as a rework narration
// line. It needs no network and always succeeds.
type TemplateDrafter struct{}

func (TemplateDrafter) Draft(_ context.Context, task plan.EpisodeTask, contentSnippets, styleSnippets []string, feedback string) (string, error) {
	header := fmt.Sprintf("第%d集 %s", task.EpisodeNumber, task.Title)
	synopsisBlock := "旁白：" + strings.TrimSpace(task.Synopsis)
	if strings.TrimSpace(feedback) != "" {
		synopsisBlock += "\n旁白：【返工指令】" + strings.TrimSpace(feedback)
	}

	var scenes []string
	for sceneIndex, content := range contentSnippets {
		if sceneIndex >= maxTemplateScenes {
			break
		}
		sceneNumber := sceneIndex + 1
		lines := []string{
			fmt.Sprintf("[%d-%d] 改编场景 - 内 - 夜", task.EpisodeNumber, sceneNumber),
			synopsisBlock,
			"旁白：改编依据为" + excerptLine(content),
		}
		for idx, dialogue := range dialogueLines(styleSnippet(styleSnippets, sceneIndex)) {
			lines = append(lines, fmt.Sprintf("角色%d：%s", idx+1, dialogue))
		}
		lines = append(lines, fmt.Sprintf("△ 角色%d：整理道具显示动作回应原著情节", sceneNumber))
		scenes = append(scenes, strings.Join(lines, "\n"))
	}

	if len(scenes) == 0 {
		scenes = append(scenes, strings.Join([]string{
			fmt.Sprintf("[%d-1] 改编场景 - 内 - 夜", task.EpisodeNumber),
			synopsisBlock,
			"角色1：根据原著补全对话",
			"△ 角色1：摆放关键道具强调冲突",
		}, "\n"))
	}

	return header + "\n\n" + strings.Join(scenes, "\n\n"), nil
}

func styleSnippet(snippets []string, index int) string {
	if index < len(snippets) {
		return snippets[index]
	}
	return ""
}

// dialogueLines picks up to two non-blank lines from the first three lines of
// a style snippet.
func dialogueLines(snippet string) []string {
	var picked []string
	for i, line := range strings.Split(snippet, "\n") {
		if i >= 3 || len(picked) >= 2 {
			break
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			picked = append(picked, trimmed)
		}
	}
	return picked
}

// excerptLine takes the first line of a content snippet, capped at 120 runes.
func excerptLine(content string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "根据原著扩写冲突"
	}
	first := trimmed
	if idx := strings.IndexByte(first, '\n'); idx >= 0 {
		first = first[:idx]
	}
	runes := []rune(first)
	if len(runes) > 120 {
		first = string(runes[:120])
	}
	return first
}
