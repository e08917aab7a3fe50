package validate

import "context"

// Pipeline runs a fixed sequence of checks and collects every failure
// message. All checks always run; a draft passes only when the error list
// comes back empty.
type Pipeline struct {
	checks []Check
}

// Options adjust the standard pipeline. Zero values select the defaults.
type Options struct {
	MinChars          int
	MaxChars          int
	ForbiddenMarks    []string
	EmotionClassifier EmotionClassifier
	EmotionKeywords   []string
	PolicyKeywords    []string
}

// NewPipeline assembles the standard check sequence: length, punctuation,
// line format, action-line emotion, content policy.
func NewPipeline(opts Options) *Pipeline {
	minChars := opts.MinChars
	maxChars := opts.MaxChars
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Pipeline{checks: []Check{
		LengthCheck{MinChars: minChars, MaxChars: maxChars},
		NewPunctuationCheck(opts.ForbiddenMarks),
		FormatCheck{},
		NewActionEmotionCheck(opts.EmotionClassifier, NewKeywordClassifier(opts.EmotionKeywords)),
		NewPolicyCheck(opts.PolicyKeywords),
	}}
}

// Checks exposes the ordered check list, mainly for reporting commands.
func (p *Pipeline) Checks() []Check {
	return p.checks
}

// Validate runs every check against the draft and returns the failure
// messages in check order. A nil slice means the draft passed.
func (p *Pipeline) Validate(ctx context.Context, draft string) []string {
	var errs []string
	for _, check := range p.checks {
		result := check.Run(ctx, draft)
		if !result.Passed {
			errs = append(errs, result.Message)
		}
	}
	return errs
}

// Results runs every check and returns the full per-check outcome, passes
// included, for status tables.
func (p *Pipeline) Results(ctx context.Context, draft string) []NamedResult {
	results := make([]NamedResult, 0, len(p.checks))
	for _, check := range p.checks {
		results = append(results, NamedResult{Name: check.Name(), Result: check.Run(ctx, draft)})
	}
	return results
}

// NamedResult pairs a check name with its outcome.
type NamedResult struct {
	Name string
	Result
}
