package draft

import (
	"context"
	"fmt"
	"strings"

	"scriptforge/internal/llm"
	"scriptforge/internal/plan"
	"scriptforge/internal/services"
)

// Completer is the chat capability a ModelDrafter needs. *llm.Client
// satisfies it.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ModelDrafter prompts a chat model for the episode text.
type ModelDrafter struct {
	completer Completer
}

// NewModelDrafter wraps the completer. The caller decides whether the model
// is configured; pass a TemplateDrafter instead when it is not.
func NewModelDrafter(completer Completer) *ModelDrafter {
	return &ModelDrafter{completer: completer}
}

func (d *ModelDrafter) Draft(ctx context.Context, task plan.EpisodeTask, contentSnippets, styleSnippets []string, feedback string) (string, error) {
	prompt := buildUserPrompt(task, contentSnippets, styleSnippets, feedback)
	content, err := d.completer.Complete(ctx, llm.DrafterPrompt, prompt)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "draft", "complete",
			fmt.Sprintf("episode %d draft failed", task.EpisodeNumber), err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return "", services.Wrap(services.ErrExternalTool, "draft", "complete",
			fmt.Sprintf("episode %d draft empty", task.EpisodeNumber), nil)
	}
	return content, nil
}

func buildUserPrompt(task plan.EpisodeTask, contentSnippets, styleSnippets []string, feedback string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "第%d集《%s》\n\n剧情概要：\n%s\n", task.EpisodeNumber, task.Title, task.Synopsis)
	if len(contentSnippets) > 0 {
		b.WriteString("\n原著参考片段：\n")
		for i, snippet := range contentSnippets {
			fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(snippet))
		}
	}
	if len(styleSnippets) > 0 {
		b.WriteString("\n文风参考片段：\n")
		for i, snippet := range styleSnippets {
			fmt.Fprintf(&b, "%d. %s\n", i+1, strings.TrimSpace(snippet))
		}
	}
	if strings.TrimSpace(feedback) != "" {
		b.WriteString("\n上一稿审校意见，必须全部落实：\n")
		b.WriteString(strings.TrimSpace(feedback))
		b.WriteString("\n")
	}
	return b.String()
}
