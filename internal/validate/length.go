package validate

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// LengthCheck ensures the draft's rune count falls within an inclusive range.
type LengthCheck struct {
	MinChars int
	MaxChars int
}

// NewLengthCheck constructs a LengthCheck with the provided inclusive bounds.
// Default rune-count bounds for a deliverable episode draft.
const (
	DefaultMinChars = 1000
	DefaultMaxChars = 1300
)

func NewLengthCheck(minChars, maxChars int) LengthCheck {
	return LengthCheck{MinChars: minChars, MaxChars: maxChars}
}

func (LengthCheck) Name() string { return "length" }

func (c LengthCheck) Run(_ context.Context, draft string) Result {
	count := utf8.RuneCountInString(draft)
	if count >= c.MinChars && count <= c.MaxChars {
		return pass(fmt.Sprintf("WordCount OK: %d characters", count))
	}
	return fail(fmt.Sprintf("WordCountError: %d characters, required between %d-%d", count, c.MinChars, c.MaxChars))
}
