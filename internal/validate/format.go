package validate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Line-shape whitelist for screenplay layout. Every non-blank line must match
// exactly one of: scene heading, action line, narration, interior monologue,
// or dialogue.
var (
	scenePattern     = regexp.MustCompile(`^\s*\[\d+-\d+\]\s+.+?\s*-\s*(?:内|外)\s*-\s*(?:日|夜)\s*$`)
	actionPattern    = regexp.MustCompile(`^\s*△\s*.+?：.+$`)
	narrationPattern = regexp.MustCompile(`^\s*旁白：.+$`)
	monologuePattern = regexp.MustCompile(`^\s*OS：.+$`)
	dialoguePattern  = regexp.MustCompile(`^\s*[\p{Han}A-Za-z0-9_]+：.*$`)
	blankPattern     = regexp.MustCompile(`^\s*$`)
)

var allowedLinePatterns = []*regexp.Regexp{
	scenePattern,
	actionPattern,
	narrationPattern,
	monologuePattern,
	dialoguePattern,
	blankPattern,
}

// FormatCheck reports every line that matches none of the whitelisted
// screenplay line shapes, with its 1-based line number.
type FormatCheck struct{}

func (FormatCheck) Name() string { return "format" }

func (FormatCheck) Run(_ context.Context, draft string) Result {
	var errs []string
	for index, line := range strings.Split(draft, "\n") {
		if matchesAllowedShape(line) {
			continue
		}
		errs = append(errs, fmt.Sprintf("Line %d: FormatError -> %s", index+1, strings.TrimSpace(line)))
	}
	if len(errs) == 0 {
		return pass("Format OK")
	}
	return fail(strings.Join(errs, "\n"))
}

func matchesAllowedShape(line string) bool {
	for _, pattern := range allowedLinePatterns {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}
