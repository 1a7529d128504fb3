package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/sponsor-emails/internal/check"
)

// ValidateConfigRequest takes no arguments.
type ValidateConfigRequest struct{}

// ValidateConfigResponse lists one result per check.
type ValidateConfigResponse struct {
	Results []CheckResult `json:"results" jsonschema:"check results in execution order"`
}

type validator interface {
	Run(ctx context.Context) []check.Result
}

// NewValidateConfig creates a new ValidateConfig tool.
func NewValidateConfig(v validator) *ValidateConfig {
	return &ValidateConfig{v: v}
}

// ValidateConfig runs the configuration checks.
type ValidateConfig struct {
	v validator
}

// ValidateConfig runs every check; failed checks are reported, not returned as errors.
func (t *ValidateConfig) ValidateConfig(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ValidateConfigRequest,
) (*mcp.CallToolResult, ValidateConfigResponse, error) {
	results := t.v.Run(ctx)

	out := make([]CheckResult, 0, len(results))
	for _, r := range results {
		cr := CheckResult{Component: r.Component, OK: r.OK()}
		if r.Err != nil {
			cr.Error = r.Err.Error()
		}
		out = append(out, cr)
	}

	return nil, ValidateConfigResponse{Results: out}, nil
}
