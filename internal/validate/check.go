package validate

import "context"

// Result is returned by each deterministic validation check.
type Result struct {
	Passed  bool
	Message string
}

// Check describes a single replaceable validation rule.
type Check interface {
	// Name returns a stable identifier used in logs.
	Name() string
	// Run evaluates the draft. Non-compliance is reported through Result,
	// never through an error.
	Run(ctx context.Context, draft string) Result
}

func pass(message string) Result {
	return Result{Passed: true, Message: message}
}

func fail(message string) Result {
	return Result{Passed: false, Message: message}
}
