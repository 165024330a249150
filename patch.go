// Package autodoc provides domain types for reviewing documentation patches.
package autodoc

import (
	"context"
	"time"
)

// Patch represents a proposed before/after content change awaiting review.
type Patch struct {
	ID     int `json:"id"`
	RunID  int `json:"run_id"`
	PageID int `json:"page_id"`

	PagePath string `json:"page_path,omitempty"` // target page path, used for language detection

	Before string `json:"before"`
	After  string `json:"after"`

	// StructuredDiff is the backend's pre-computed line decomposition.
	// When absent the client derives a diff locally (see DeriveLines).
	StructuredDiff *StructuredDiff `json:"structured_diff,omitempty"`

	// DiffText is an optional unified-diff rendering of the change.
	DiffText string `json:"diff_text,omitempty"`

	Status     PatchStatus `json:"status"`
	ApprovedBy string      `json:"approved_by,omitempty"`
	AppliedAt  *time.Time  `json:"applied_at,omitempty"`
	Error      *PatchError `json:"error,omitempty"`
}

// PatchError is the structured error payload attached by the backend when an
// apply attempt fails server-side.
type PatchError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// PatchStatus is the review lifecycle state of a Patch.
type PatchStatus string

// Patch lifecycle states. Applied, Rejected and Error are terminal.
const (
	StatusProposed PatchStatus = "proposed"
	StatusApplied  PatchStatus = "applied"
	StatusRejected PatchStatus = "rejected"
	StatusError    PatchStatus = "error"
)

// Terminal reports whether the status admits no further transitions.
// A terminal patch is immutable in the UI: approve/reject controls must not
// be offered once Terminal holds.
func (s PatchStatus) Terminal() bool {
	switch s {
	case StatusApplied, StatusRejected, StatusError:
		return true
	}
	return false
}

// StructuredDiff is a pre-computed decomposition of a text change into
// added, removed and modified line sets, supplied by the backend.
type StructuredDiff struct {
	Added    []string       `json:"added"`
	Removed  []string       `json:"removed"`
	Modified []ModifiedLine `json:"modified"`
}

// Empty reports whether the structured diff carries no lines at all.
// An empty structured diff falls back to local derivation, same as a
// missing one.
func (d *StructuredDiff) Empty() bool {
	return d == nil || (len(d.Added) == 0 && len(d.Removed) == 0 && len(d.Modified) == 0)
}

// ModifiedLine pairs the old and new text of a changed line.
type ModifiedLine struct {
	Line int    `json:"line"` // 1-based line number
	Old  string `json:"old"`
	New  string `json:"new"`
}

// PatchService provides access to patches and their review transitions.
// The client never mutates a Patch locally; the server's returned copy is
// authoritative after every mutating call.
type PatchService interface {
	// Patch fetches a patch by id.
	Patch(ctx context.Context, id int) (*Patch, error)

	// Apply approves the patch and returns the server's updated copy.
	Apply(ctx context.Context, id int, approvedBy string) (*Patch, error)

	// Reject declines the patch and returns the server's updated copy.
	Reject(ctx context.Context, id int, reason string) (*Patch, error)
}
