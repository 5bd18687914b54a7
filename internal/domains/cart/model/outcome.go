package model

import "encoding/json"

// Outcome reports what a cart operation did. Operations never fail toward
// the caller; the outcome carries the result instead.
type Outcome int

const (
	OutcomeAdded Outcome = iota + 1
	OutcomeMerged
	OutcomeNeedsSizeSelection
	OutcomeRejected
	OutcomeUpdated
	OutcomeRemoved
	OutcomeNotFound
	OutcomeCleared
	OutcomeRestored
)

var outcomeNames = map[Outcome]string{
	OutcomeAdded:              "added",
	OutcomeMerged:             "merged",
	OutcomeNeedsSizeSelection: "needs_size_selection",
	OutcomeRejected:           "rejected",
	OutcomeUpdated:            "updated",
	OutcomeRemoved:            "removed",
	OutcomeNotFound:           "not_found",
	OutcomeCleared:            "cleared",
	OutcomeRestored:           "restored",
}

func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Changed reports whether the cart content was modified
func (o Outcome) Changed() bool {
	switch o {
	case OutcomeAdded, OutcomeMerged, OutcomeUpdated, OutcomeRemoved, OutcomeCleared, OutcomeRestored:
		return true
	}
	return false
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}
