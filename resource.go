package autodoc

import (
	"context"
	"time"
)

// Connection describes a documentation source the backend watches.
type Connection struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	BaseURL string `json:"base_url"`
	// Token is write-only: the client sends a fresh value when creating or
	// updating a connection and never receives the stored plaintext back.
	Token string `json:"token,omitempty"`
}

// Rule maps source code locations to documentation pages.
type Rule struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name"`
	SourceGlob  string `json:"source_glob"`
	PageID      int    `json:"page_id"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Template is a reusable documentation page skeleton.
type Template struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Prompt is an instruction set handed to the backend's LLM when it drafts
// documentation changes.
type Prompt struct {
	ID      int    `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

// LLMConfig configures the backend's model provider.
type LLMConfig struct {
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	// APIKey is write-only, like Connection.Token.
	APIKey string `json:"api_key,omitempty"`
}

// RunReport summarizes one analysis run and the patches it produced.
type RunReport struct {
	RunID      int          `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt *time.Time   `json:"finished_at,omitempty"`
	Status     string       `json:"status"`
	Patches    []PatchBrief `json:"patches"`
}

// PatchBrief is the per-patch summary row of a run report.
type PatchBrief struct {
	ID       int         `json:"id"`
	PageID   int         `json:"page_id"`
	PagePath string      `json:"page_path,omitempty"`
	Status   PatchStatus `json:"status"`
	Summary  string      `json:"summary,omitempty"`
}

// ConnectionService manages documentation source connections.
type ConnectionService interface {
	Connections(ctx context.Context) ([]Connection, error)
	CreateConnection(ctx context.Context, c Connection) (*Connection, error)
}

// RuleService manages source-to-page rules.
type RuleService interface {
	Rules(ctx context.Context) ([]Rule, error)
	CreateRule(ctx context.Context, r Rule) (*Rule, error)
	UpdateRule(ctx context.Context, r Rule) (*Rule, error)
	DeleteRule(ctx context.Context, id int) error
}

// TemplateService manages page templates.
type TemplateService interface {
	Templates(ctx context.Context) ([]Template, error)
	CreateTemplate(ctx context.Context, t Template) (*Template, error)
	UpdateTemplate(ctx context.Context, t Template) (*Template, error)
	DeleteTemplate(ctx context.Context, id int) error
}

// PromptService manages LLM prompts.
type PromptService interface {
	Prompts(ctx context.Context) ([]Prompt, error)
	CreatePrompt(ctx context.Context, p Prompt) (*Prompt, error)
	UpdatePrompt(ctx context.Context, p Prompt) (*Prompt, error)
	DeletePrompt(ctx context.Context, id int) error
}

// LLMConfigService reads and writes the backend's model configuration.
type LLMConfigService interface {
	LLMConfig(ctx context.Context) (*LLMConfig, error)
	SetLLMConfig(ctx context.Context, c LLMConfig) (*LLMConfig, error)
}

// RunService reads analysis run reports.
type RunService interface {
	RunReport(ctx context.Context, runID int) (*RunReport, error)
}
