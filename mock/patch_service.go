// Package mock provides function-field mocks for the root interfaces.
package mock

import (
	"context"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.PatchService = (*PatchService)(nil)

// PatchService is a mock implementation of autodoc.PatchService.
type PatchService struct {
	PatchFn  func(ctx context.Context, id int) (*autodoc.Patch, error)
	ApplyFn  func(ctx context.Context, id int, approvedBy string) (*autodoc.Patch, error)
	RejectFn func(ctx context.Context, id int, reason string) (*autodoc.Patch, error)
}

func (s *PatchService) Patch(ctx context.Context, id int) (*autodoc.Patch, error) {
	return s.PatchFn(ctx, id)
}

func (s *PatchService) Apply(ctx context.Context, id int, approvedBy string) (*autodoc.Patch, error) {
	return s.ApplyFn(ctx, id, approvedBy)
}

func (s *PatchService) Reject(ctx context.Context, id int, reason string) (*autodoc.Patch, error) {
	return s.RejectFn(ctx, id, reason)
}
