package autodoc

import "time"

// ReviewAction records one reviewer decision for the local audit journal.
type ReviewAction struct {
	PatchID    int         `json:"patch_id"`
	RunID      int         `json:"run_id,omitempty"`
	Action     string      `json:"action"` // "apply" or "reject"
	Status     PatchStatus `json:"status"` // server status after the call
	ReviewedBy string      `json:"reviewed_by,omitempty"`
	Reason     string      `json:"reason,omitempty"` // reject reason, if any
	RecordedAt time.Time   `json:"recorded_at"`
}

// ActionJournal persists review actions locally.
type ActionJournal interface {
	// Append records an action. Appending never rewrites earlier entries.
	Append(action ReviewAction) error

	// Load returns all recorded actions in append order.
	Load() ([]ReviewAction, error)
}
