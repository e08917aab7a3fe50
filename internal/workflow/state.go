package workflow

import "scriptforge/internal/plan"

// Tag identifies a state-machine node. The set is closed; transitions only
// ever return one of these values.
type Tag string

const (
	TagHumanGate Tag = "human_gate"
	TagPlan      Tag = "plan"
	TagRetrieve  Tag = "retrieve"
	TagDraft     Tag = "draft"
	TagValidate  Tag = "validate"
	TagDeliver   Tag = "deliver"
	TagRevise    Tag = "revise"
	TagEscalate  Tag = "escalate"
	TagDone      Tag = "done"
)

// State is the single mutable record threaded through the machine. It is
// created once per run and owned exclusively by the orchestrator.
type State struct {
	Blueprint plan.Blueprint

	EpisodeTasks []plan.EpisodeTask
	EpisodeIndex int
	CurrentTask  *plan.EpisodeTask

	ContentSnippets []string
	StyleSnippets   []string

	Draft            string
	ValidationErrors []string
	Feedback         string
	RetryCount       int

	DeliveredScripts    []string
	RequiresHumanReview bool
}

// NewState seeds a run from the blueprint.
func NewState(blueprint plan.Blueprint) *State {
	return &State{Blueprint: blueprint}
}

// Planned reports whether the task queue has been populated.
func (s *State) Planned() bool {
	return len(s.EpisodeTasks) > 0
}

// Exhausted reports whether every task has been consumed.
func (s *State) Exhausted() bool {
	return s.EpisodeIndex >= len(s.EpisodeTasks)
}

// Compliant reports whether the latest validation pass found no defects.
func (s *State) Compliant() bool {
	return len(s.ValidationErrors) == 0
}
