package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hal9000y/sponsor-emails/internal/config"
	"github.com/hal9000y/sponsor-emails/internal/sender"
)

// NewServer creates an MCP server with the configuration check and message preview tools.
func NewServer(cfg *config.Config, v validator, docs sender.DocumentFetcher, domain string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "sponsor-emails", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_config",
		Description: "Check the Mailgun domain, the sponsor and sender sheets and the template document",
	}, NewValidateConfig(v).ValidateConfig)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview_message",
		Description: "Render the sponsorship email for a company, contact and sender without sending it",
	}, NewPreviewMessage(cfg, docs, domain).PreviewMessage)

	return server
}
