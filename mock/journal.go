package mock

import "github.com/noahmasoud/autodoc"

// Compile-time interface verification.
var _ autodoc.ActionJournal = (*ActionJournal)(nil)

// ActionJournal is a mock implementation of autodoc.ActionJournal.
type ActionJournal struct {
	AppendFn func(action autodoc.ReviewAction) error
	LoadFn   func() ([]autodoc.ReviewAction, error)
}

func (j *ActionJournal) Append(action autodoc.ReviewAction) error {
	return j.AppendFn(action)
}

func (j *ActionJournal) Load() ([]autodoc.ReviewAction, error) {
	return j.LoadFn()
}
