package validate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// NeutralLabel is the classification that keeps an action line compliant.
const NeutralLabel = "neutral"

// EmotionalLabel is the label produced by the keyword fallback for flagged lines.
const EmotionalLabel = "emotional"

// DefaultEmotionKeywords trigger the keyword fallback when a rich classifier
// is unavailable.
var DefaultEmotionKeywords = []string{
	"愤怒",
	"生气",
	"悲伤",
	"绝望",
	"喜极",
	"兴奋",
	"害怕",
	"恐惧",
	"焦虑",
	"无奈",
	"紧张",
	"惊呆",
}

var actionLinePattern = regexp.MustCompile(`^\s*△\s*.+?：(.*)$`)

// EmotionClassifier labels a snippet of action description. Implementations
// may call out to an external model; errors are treated as "classifier
// unavailable" and never fail the pipeline.
type EmotionClassifier interface {
	ClassifyEmotion(ctx context.Context, text string) (string, error)
}

// KeywordClassifier is the deterministic fallback tier: any configured keyword
// present makes the description emotional, otherwise neutral.
type KeywordClassifier struct {
	Keywords []string
}

// NewKeywordClassifier constructs a KeywordClassifier; an empty set falls
// back to the default keywords.
func NewKeywordClassifier(keywords []string) KeywordClassifier {
	if len(keywords) == 0 {
		keywords = DefaultEmotionKeywords
	}
	return KeywordClassifier{Keywords: keywords}
}

func (k KeywordClassifier) ClassifyEmotion(_ context.Context, text string) (string, error) {
	lowered := strings.ToLower(text)
	for _, keyword := range k.Keywords {
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			return EmotionalLabel, nil
		}
	}
	return NeutralLabel, nil
}

// ActionEmotionCheck scans "△ speaker：description" lines and flags any whose
// description is classified as non-neutral. Action lines must describe
// visible physical behaviour, not inner emotional states.
type ActionEmotionCheck struct {
	classifier EmotionClassifier
	fallback   KeywordClassifier
}

// NewActionEmotionCheck constructs the check. classifier may be nil, in which
// case only the keyword fallback runs.
func NewActionEmotionCheck(classifier EmotionClassifier, fallback KeywordClassifier) ActionEmotionCheck {
	return ActionEmotionCheck{classifier: classifier, fallback: fallback}
}

func (ActionEmotionCheck) Name() string { return "action-emotion" }

func (c ActionEmotionCheck) Run(ctx context.Context, draft string) Result {
	var errs []string
	for index, line := range strings.Split(draft, "\n") {
		match := actionLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		description := strings.TrimSpace(match[1])
		if description == "" {
			continue
		}
		label := c.classify(ctx, description)
		if label != NeutralLabel {
			errs = append(errs, fmt.Sprintf("Line %d: ActionLineError -> '%s' flagged as %s", index+1, description, label))
		}
	}
	if len(errs) == 0 {
		return pass("Action Lines OK")
	}
	return fail(strings.Join(errs, "\n"))
}

func (c ActionEmotionCheck) classify(ctx context.Context, description string) string {
	if c.classifier != nil {
		if label, err := c.classifier.ClassifyEmotion(ctx, description); err == nil {
			return strings.ToLower(strings.TrimSpace(label))
		}
	}
	label, _ := c.fallback.ClassifyEmotion(ctx, description)
	return label
}
