package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/noahmasoud/autodoc"
)

// Compile-time interface verification.
var (
	_ autodoc.ConnectionService = (*Client)(nil)
	_ autodoc.RuleService       = (*Client)(nil)
	_ autodoc.TemplateService   = (*Client)(nil)
	_ autodoc.PromptService     = (*Client)(nil)
	_ autodoc.LLMConfigService  = (*Client)(nil)
)

// Connections lists the configured documentation sources.
func (c *Client) Connections(ctx context.Context) ([]autodoc.Connection, error) {
	var out []autodoc.Connection
	if err := c.do(ctx, http.MethodGet, "/connections", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateConnection registers a new documentation source.
func (c *Client) CreateConnection(ctx context.Context, conn autodoc.Connection) (*autodoc.Connection, error) {
	var out autodoc.Connection
	if err := c.do(ctx, http.MethodPost, "/connections", nil, conn, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LLMConfig reads the backend's model configuration. The API key is never
// included in the response.
func (c *Client) LLMConfig(ctx context.Context) (*autodoc.LLMConfig, error) {
	var out autodoc.LLMConfig
	if err := c.do(ctx, http.MethodGet, "/llm-config", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetLLMConfig replaces the backend's model configuration.
func (c *Client) SetLLMConfig(ctx context.Context, cfg autodoc.LLMConfig) (*autodoc.LLMConfig, error) {
	var out autodoc.LLMConfig
	if err := c.do(ctx, http.MethodPost, "/llm-config", nil, cfg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Rules lists source-to-page rules.
func (c *Client) Rules(ctx context.Context) ([]autodoc.Rule, error) {
	var out []autodoc.Rule
	if err := c.do(ctx, http.MethodGet, "/v1/rules", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateRule adds a rule.
func (c *Client) CreateRule(ctx context.Context, r autodoc.Rule) (*autodoc.Rule, error) {
	var out autodoc.Rule
	if err := c.do(ctx, http.MethodPost, "/v1/rules", nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateRule replaces a rule by id.
func (c *Client) UpdateRule(ctx context.Context, r autodoc.Rule) (*autodoc.Rule, error) {
	var out autodoc.Rule
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/rules/%d", r.ID), nil, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteRule removes a rule.
func (c *Client) DeleteRule(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/rules/%d", id), nil, nil, nil)
}

// Templates lists page templates.
func (c *Client) Templates(ctx context.Context) ([]autodoc.Template, error) {
	var out []autodoc.Template
	if err := c.do(ctx, http.MethodGet, "/v1/templates", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTemplate adds a template.
func (c *Client) CreateTemplate(ctx context.Context, t autodoc.Template) (*autodoc.Template, error) {
	var out autodoc.Template
	if err := c.do(ctx, http.MethodPost, "/v1/templates", nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplate replaces a template by id.
func (c *Client) UpdateTemplate(ctx context.Context, t autodoc.Template) (*autodoc.Template, error) {
	var out autodoc.Template
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/templates/%d", t.ID), nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate removes a template.
func (c *Client) DeleteTemplate(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/templates/%d", id), nil, nil, nil)
}

// Prompts lists LLM prompts.
func (c *Client) Prompts(ctx context.Context) ([]autodoc.Prompt, error) {
	var out []autodoc.Prompt
	if err := c.do(ctx, http.MethodGet, "/v1/prompts", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePrompt adds a prompt.
func (c *Client) CreatePrompt(ctx context.Context, p autodoc.Prompt) (*autodoc.Prompt, error) {
	var out autodoc.Prompt
	if err := c.do(ctx, http.MethodPost, "/v1/prompts", nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePrompt replaces a prompt by id.
func (c *Client) UpdatePrompt(ctx context.Context, p autodoc.Prompt) (*autodoc.Prompt, error) {
	var out autodoc.Prompt
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/prompts/%d", p.ID), nil, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePrompt removes a prompt.
func (c *Client) DeletePrompt(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/prompts/%d", id), nil, nil, nil)
}
