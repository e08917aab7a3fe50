package validate

import (
	"context"
	"fmt"
	"strings"
)

// DefaultPolicyKeywords enumerate the topics a deliverable draft may not
// mention anywhere in its text.
var DefaultPolicyKeywords = []string{
	"黄赌毒",
	"赌博",
	"毒品",
	"贩毒",
	"嫖娼",
	"吸毒",
}

// PolicyCheck performs a whole-text sweep for forbidden topic keywords.
type PolicyCheck struct {
	Keywords []string
}

// NewPolicyCheck constructs a PolicyCheck; an empty keyword set falls back to
// the defaults.
func NewPolicyCheck(keywords []string) PolicyCheck {
	if len(keywords) == 0 {
		keywords = DefaultPolicyKeywords
	}
	return PolicyCheck{Keywords: keywords}
}

func (PolicyCheck) Name() string { return "content-policy" }

func (c PolicyCheck) Run(_ context.Context, draft string) Result {
	lowered := strings.ToLower(draft)
	var found []string
	for _, keyword := range c.Keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			found = append(found, keyword)
		}
	}
	if len(found) == 0 {
		return pass("Censorship OK")
	}
	return fail(fmt.Sprintf("CensorshipError: forbidden topics -> %s", strings.Join(found, ", ")))
}
