package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var _ autodoc.PatchService = (*Client)(nil)
var _ autodoc.RunService = (*Client)(nil)

// Patch fetches a patch by id.
func (c *Client) Patch(ctx context.Context, id int) (*autodoc.Patch, error) {
	var patch autodoc.Patch
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/patches/%d", id), nil, nil, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// Apply approves the patch. The returned patch is the server's authoritative
// copy including the new status and applied timestamp.
func (c *Client) Apply(ctx context.Context, id int, approvedBy string) (*autodoc.Patch, error) {
	query := url.Values{}
	if approvedBy != "" {
		query.Set("approved_by", approvedBy)
	}

	var patch autodoc.Patch
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/patches/%d/apply", id), query, nil, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// Reject declines the patch with an optional reason.
func (c *Client) Reject(ctx context.Context, id int, reason string) (*autodoc.Patch, error) {
	body := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}

	var patch autodoc.Patch
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1/patches/%d/reject", id), nil, body, &patch); err != nil {
		return nil, err
	}
	return &patch, nil
}

// RunReport fetches the report for an analysis run.
func (c *Client) RunReport(ctx context.Context, runID int) (*autodoc.RunReport, error) {
	var report autodoc.RunReport
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/runs/%d/report", runID), nil, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
