package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// TokenCount counts CJK runes individually and runs of latin letters or
// digits as single tokens. This is the reporting metric; the length check
// counts raw runes and the two are deliberately different.
func TokenCount(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Han, r):
			if inRun {
				count++
				inRun = false
			}
			count++
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			inRun = true
		default:
			if inRun {
				count++
				inRun = false
			}
		}
	}
	if inRun {
		count++
	}
	return count
}

// EpisodeLength describes a single episode's measured size.
type EpisodeLength struct {
	Episode    int
	Tokens     int
	SceneCount int
	InRange    bool
}

// LengthReport is the per-episode breakdown of a delivered script bundle.
type LengthReport struct {
	MinTokens int
	MaxTokens int
	Episodes  []EpisodeLength
}

var (
	episodeHeaderPattern = regexp.MustCompile(`^第(\d{1,3})集\s*$`)
	sceneHeaderPattern   = regexp.MustCompile(`^\[(\d{1,3})-(\d{1,2})\]\s.+$`)
)

// BuildLengthReport splits the combined script text on episode headers and
// measures each episode's token count and scene count against the configured
// token range. Text before the first header is ignored.
func BuildLengthReport(text string, minTokens, maxTokens int) LengthReport {
	report := LengthReport{MinTokens: minTokens, MaxTokens: maxTokens}

	current := -1
	var body strings.Builder
	scenes := 0

	flush := func() {
		if current < 0 {
			return
		}
		tokens := TokenCount(body.String())
		report.Episodes = append(report.Episodes, EpisodeLength{
			Episode:    current,
			Tokens:     tokens,
			SceneCount: scenes,
			InRange:    tokens >= minTokens && tokens <= maxTokens,
		})
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		if match := episodeHeaderPattern.FindStringSubmatch(trimmed); match != nil {
			flush()
			current = parseNumber(match[1])
			body.Reset()
			scenes = 0
			continue
		}
		if current < 0 {
			continue
		}
		if sceneHeaderPattern.MatchString(trimmed) {
			scenes++
		}
		body.WriteString(line)
		body.WriteString("\n")
	}
	flush()
	return report
}

// Summary renders the report as one line per episode.
func (r LengthReport) Summary() string {
	if len(r.Episodes) == 0 {
		return "no episodes found"
	}
	lines := make([]string, 0, len(r.Episodes))
	for _, ep := range r.Episodes {
		status := "OK"
		if !ep.InRange {
			status = fmt.Sprintf("out of range %d-%d", r.MinTokens, r.MaxTokens)
		}
		lines = append(lines, fmt.Sprintf("第%d集: %d tokens, %d scenes (%s)", ep.Episode, ep.Tokens, ep.SceneCount, status))
	}
	return strings.Join(lines, "\n")
}

func parseNumber(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
