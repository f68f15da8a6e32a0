package replay

import "fmt"

// ReplayError pins a replay failure to the decision step that caused it.
// StepIndex is -1 for spec-level problems found before the engine runs.
type ReplayError struct {
	StepIndex int32          `json:"step_index"`
	Reason    string         `json:"reason"`
	Message   string         `json:"message"`
	Expected  *ExpectedQuery `json:"expected,omitempty"`
}

// ExpectedQuery describes the decision the engine was actually asking for
// when the script diverged.
type ExpectedQuery struct {
	Seat  int    `json:"seat"`
	Query string `json:"query"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.StepIndex, e.Reason, e.Message)
}
