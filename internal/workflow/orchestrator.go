package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"scriptforge/internal/draft"
	"scriptforge/internal/logging"
	"scriptforge/internal/plan"
	"scriptforge/internal/retrieval"
	"scriptforge/internal/services"
	"scriptforge/internal/validate"
)

// DefaultMaxRetries bounds automatic revision cycles per episode.
const DefaultMaxRetries = 3

const snippetTopK = 3

// Orchestrator wires the planner output, retrieval index, drafter and
// validation pipeline into one sequential run.
type Orchestrator struct {
	index    *retrieval.DualIndex
	drafter  draft.Drafter
	pipeline *validate.Pipeline
	reviewer Reviewer

	maxRetries int
	logger     *slog.Logger
	onDeliver  func(episode plan.EpisodeTask, script string)
}

// OrchestratorOption customizes an Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithMaxRetries overrides the revision budget (defaults to 3).
func WithMaxRetries(retries int) OrchestratorOption {
	return func(o *Orchestrator) {
		if retries > 0 {
			o.maxRetries = retries
		}
	}
}

// WithLogger attaches a logger. Component scoping is applied internally.
func WithLogger(logger *slog.Logger) OrchestratorOption {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logging.NewComponentLogger(logger, "workflow")
		}
	}
}

// WithDeliveryHook registers a callback invoked after every delivery, before
// the run advances to the next episode. Callers use it to persist partial
// results.
func WithDeliveryHook(hook func(episode plan.EpisodeTask, script string)) OrchestratorOption {
	return func(o *Orchestrator) {
		o.onDeliver = hook
	}
}

// NewOrchestrator builds a run driver. index, drafter and pipeline are
// required.
func NewOrchestrator(index *retrieval.DualIndex, drafter draft.Drafter, pipeline *validate.Pipeline, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		index:      index,
		drafter:    drafter,
		pipeline:   pipeline,
		maxRetries: DefaultMaxRetries,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run executes the machine to a terminal state. The returned State carries
// the delivered scripts and the escalation flag; a non-nil error means the
// run aborted (drafting failure or cancellation) and the State holds whatever
// was delivered before the abort.
func (o *Orchestrator) Run(ctx context.Context, blueprint plan.Blueprint) (*State, error) {
	state := NewState(blueprint)
	tag := TagHumanGate

	for tag != TagDone {
		if err := ctx.Err(); err != nil {
			return state, err
		}
		stepCtx := services.WithState(ctx, string(tag))
		if state.CurrentTask != nil {
			stepCtx = services.WithEpisode(stepCtx, state.CurrentTask.EpisodeNumber)
		}
		next, err := o.step(stepCtx, tag, state)
		if err != nil {
			return state, err
		}
		tag = next
	}
	return state, nil
}

func (o *Orchestrator) step(ctx context.Context, tag Tag, state *State) (Tag, error) {
	switch tag {
	case TagHumanGate:
		return o.stepHumanGate(state), nil
	case TagPlan:
		return o.stepPlan(state), nil
	case TagRetrieve:
		return o.stepRetrieve(state), nil
	case TagDraft:
		return o.stepDraft(ctx, state)
	case TagValidate:
		return o.stepValidate(ctx, state), nil
	case TagRevise:
		return o.stepRevise(state), nil
	case TagDeliver:
		return o.stepDeliver(state), nil
	case TagEscalate:
		return o.stepEscalate(state), nil
	default:
		return TagDone, services.Wrap(services.ErrValidation, "workflow", "step",
			fmt.Sprintf("unknown state %q", tag), nil)
	}
}

// stepHumanGate halts the machine when the escalation flag is set; the flag
// is sticky and only external intervention clears it.
func (o *Orchestrator) stepHumanGate(state *State) Tag {
	if state.RequiresHumanReview {
		return TagDone
	}
	return TagPlan
}

// stepPlan populates the task queue exactly once; re-entry is a no-op.
func (o *Orchestrator) stepPlan(state *State) Tag {
	if !state.Planned() {
		state.EpisodeTasks = plan.Plan(state.Blueprint)
		state.CurrentTask = &state.EpisodeTasks[0]
		o.logger.Info("planned episodes", logging.Args(
			logging.Int("episodes", len(state.EpisodeTasks)))...)
	}
	if state.CurrentTask == nil {
		return TagDone
	}
	return TagRetrieve
}

func (o *Orchestrator) stepRetrieve(state *State) Tag {
	task := state.CurrentTask
	if task == nil {
		return TagDone
	}
	state.ContentSnippets = snippetTexts(o.index.RetrieveContent(task.ContentQuery, snippetTopK))
	state.StyleSnippets = snippetTexts(o.index.RetrieveStyle(task.StyleQuery, snippetTopK))
	o.logger.Debug("retrieved snippets", logging.Args(
		logging.Int(logging.FieldEpisode, task.EpisodeNumber),
		logging.Int("content_snippets", len(state.ContentSnippets)),
		logging.Int("style_snippets", len(state.StyleSnippets)))...)
	return TagDraft
}

func (o *Orchestrator) stepDraft(ctx context.Context, state *State) (Tag, error) {
	task := state.CurrentTask
	if task == nil {
		return TagDone, nil
	}
	script, err := o.drafter.Draft(ctx, *task, state.ContentSnippets, state.StyleSnippets, state.Feedback)
	if err != nil {
		logging.WithContext(ctx, o.logger).Error("draft failed", logging.Args(logging.Error(err))...)
		return TagDone, err
	}
	state.Draft = script
	return TagValidate, nil
}

func (o *Orchestrator) stepValidate(ctx context.Context, state *State) Tag {
	state.ValidationErrors = o.pipeline.Validate(ctx, state.Draft)
	if state.Compliant() {
		return TagDeliver
	}
	episode := 0
	if state.CurrentTask != nil {
		episode = state.CurrentTask.EpisodeNumber
	}
	o.logger.Info("validation failed", logging.Args(
		logging.Int(logging.FieldEpisode, episode),
		logging.Int(logging.FieldRetry, state.RetryCount),
		logging.Int("errors", len(state.ValidationErrors)))...)
	if state.RetryCount >= o.maxRetries {
		return TagEscalate
	}
	return TagRevise
}

func (o *Orchestrator) stepRevise(state *State) Tag {
	if state.CurrentTask != nil {
		state.Feedback = o.reviewer.Review(state.ValidationErrors, *state.CurrentTask)
	}
	state.RetryCount++
	return TagDraft
}

func (o *Orchestrator) stepDeliver(state *State) Tag {
	task := state.CurrentTask
	state.DeliveredScripts = append(state.DeliveredScripts, state.Draft)
	state.RetryCount = 0
	state.Feedback = ""
	state.ValidationErrors = nil
	state.EpisodeIndex++

	if task != nil {
		o.logger.Info("episode delivered", logging.Args(
			logging.Int(logging.FieldEpisode, task.EpisodeNumber),
			logging.String("title", task.Title))...)
		if o.onDeliver != nil {
			o.onDeliver(*task, state.Draft)
		}
	}

	if state.Exhausted() {
		state.CurrentTask = nil
		return TagDone
	}
	state.CurrentTask = &state.EpisodeTasks[state.EpisodeIndex]
	return TagRetrieve
}

func (o *Orchestrator) stepEscalate(state *State) Tag {
	state.RequiresHumanReview = true
	episode := 0
	if state.CurrentTask != nil {
		episode = state.CurrentTask.EpisodeNumber
	}
	o.logger.Warn("retry budget exhausted, escalating for human review", logging.Args(
		logging.Int(logging.FieldEpisode, episode),
		logging.Int(logging.FieldRetry, state.RetryCount))...)
	return TagHumanGate
}

func snippetTexts(results []retrieval.Result) []string {
	if len(results) == 0 {
		return nil
	}
	texts := make([]string, 0, len(results))
	for _, result := range results {
		texts = append(texts, result.Text)
	}
	return texts
}
