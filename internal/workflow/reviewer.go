package workflow

import (
	"fmt"
	"strings"

	"scriptforge/internal/plan"
)

// Reviewer translates validator error messages into category-specific
// remediation guidance for the next drafting attempt.
type Reviewer struct{}

// adviceByCategory keys on the error-name prefix each check embeds in its
// messages. Unrecognized messages pass through verbatim.
var adviceByCategory = []struct {
	marker string
	advice string
}{
	{"WordCountError", "补足剧情信息但避免灌水，优先扩写关键冲突场景。"},
	{"PunctuationError", "替换所有省略号或破折号为符合铁律的标点。"},
	{"FormatError", "逐行核对场景、旁白、动作格式，确保一行只含一个元素。"},
	{"ActionLineError", "把动作行的情绪描述改写为可见的物理动作。"},
	{"CensorshipError", "重新处理触犯审查底线的内容，改用隐喻或安全表达。"},
}

// Review builds the feedback string for a failed validation pass. An empty
// error list yields an empty string.
func (Reviewer) Review(errors []string, task plan.EpisodeTask) string {
	if len(errors) == 0 {
		return ""
	}
	prefix := fmt.Sprintf("第%d集《%s》需要修订：", task.EpisodeNumber, task.Title)
	advice := make([]string, 0, len(errors))
	for _, message := range errors {
		advice = append(advice, adviceFor(message))
	}
	return prefix + "\n" + strings.Join(advice, "\n")
}

func adviceFor(message string) string {
	for _, entry := range adviceByCategory {
		if strings.Contains(message, entry.marker) {
			return entry.advice
		}
	}
	return message
}
