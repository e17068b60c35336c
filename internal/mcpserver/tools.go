package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers the wizard tools with the MCP server.
func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("wizard-state",
			mcp.WithDescription("Show the current step, the step indicator, the draft and any validation errors"),
		),
		s.handleState,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-update",
			mcp.WithDescription("Merge answers into the draft. Only the top-level fields present replace the saved ones; nested objects are replaced whole"),
			mcp.WithObject("draft", mcp.Required(),
				mcp.Description("Partial draft using the form field names, e.g. {\"budget\":{\"min\":1000,\"max\":2000},\"primaryUse\":[\"gaming\"]}"),
			),
		),
		s.handleUpdate,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-defaults",
			mcp.WithDescription("Fill the current step's unanswered fields with their default values"),
		),
		s.handleDefaults,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-advance",
			mcp.WithDescription("Validate the current step and move to the next one"),
		),
		s.handleAdvance,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-retreat",
			mcp.WithDescription("Move back one step without validating"),
		),
		s.handleRetreat,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-submit",
			mcp.WithDescription("Submit the build for recommendations. Rate limited"),
		),
		s.handleSubmit,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-reset",
			mcp.WithDescription("Discard the draft and start over"),
		),
		s.handleReset,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-catalog",
			mcp.WithDescription("List the options a step offers"),
			mcp.WithNumber("step",
				mcp.Description("Step number (1-5); defaults to the current step"),
			),
		),
		s.handleCatalog,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("wizard-summary",
			mcp.WithDescription("Render the build requirements summary as markdown"),
		),
		s.handleSummary,
	)
}
