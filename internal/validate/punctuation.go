package validate

import (
	"context"
	"sort"
	"strings"
)

// DefaultForbiddenPunctuation lists the ellipsis and dash variants banned from
// delivered scripts.
var DefaultForbiddenPunctuation = []string{"...", "…", "——", "—", "--"}

// PunctuationCheck fails when any forbidden mark appears anywhere in the draft.
type PunctuationCheck struct {
	Forbidden []string
}

// NewPunctuationCheck constructs a PunctuationCheck; an empty set falls back
// to the default deny-list.
func NewPunctuationCheck(forbidden []string) PunctuationCheck {
	if len(forbidden) == 0 {
		forbidden = DefaultForbiddenPunctuation
	}
	return PunctuationCheck{Forbidden: forbidden}
}

func (PunctuationCheck) Name() string { return "punctuation" }

func (c PunctuationCheck) Run(_ context.Context, draft string) Result {
	seen := make(map[string]struct{})
	for _, mark := range c.Forbidden {
		if mark != "" && strings.Contains(draft, mark) {
			seen[mark] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return pass("Punctuation OK")
	}
	offending := make([]string, 0, len(seen))
	for mark := range seen {
		offending = append(offending, mark)
	}
	sort.Strings(offending)
	return fail("PunctuationError: Forbidden punctuation found -> " + strings.Join(offending, ", "))
}
