package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

// RecentWorkdayInput is the input schema for the recent_workday tool.
type RecentWorkdayInput struct {
	Date             string `json:"date" jsonschema:"the date to resolve, as YYYY-MM-DD or YYYYMMDD"`
	ConsiderNextYear bool   `json:"consider_next_year,omitempty" jsonschema:"allow answers in years after the current one"`
}

// NextWorkdayInput is the input schema for the next_workday tool.
type NextWorkdayInput struct {
	Date             string `json:"date" jsonschema:"the start date, as YYYY-MM-DD or YYYYMMDD"`
	Count            *int   `json:"count,omitempty" jsonschema:"number of business days to advance (default 1, 0 returns the date itself if it is a business day)"`
	ConsiderNextYear bool   `json:"consider_next_year,omitempty" jsonschema:"allow answers in years after the current one"`
}

// IsWorkdayInput is the input schema for the is_workday tool.
type IsWorkdayInput struct {
	Date             string `json:"date" jsonschema:"the date to check, as YYYY-MM-DD or YYYYMMDD"`
	ConsiderNextYear bool   `json:"consider_next_year,omitempty" jsonschema:"allow lookups in years after the current one"`
}

// WorkdayOutput is the output schema for the resolving tools.
// Date and Code are empty when Found is false.
type WorkdayOutput struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
	Code  string `json:"code,omitempty"`
}

// IsWorkdayOutput is the output schema for the is_workday tool.
type IsWorkdayOutput struct {
	Date    string `json:"date"`
	Workday bool   `json:"workday"`
}

// defaultNextCount is used when next_workday is called without a count.
const defaultNextCount = 1

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recent_workday",
		Description: "Return the nearest business day on or after a date",
	}, s.handleRecentWorkday)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "next_workday",
		Description: "Return the business day a number of business days after a date",
	}, s.handleNextWorkday)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "is_workday",
		Description: "Check whether a date is a business day",
	}, s.handleIsWorkday)
}

func (s *Server) handleRecentWorkday(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RecentWorkdayInput,
) (*mcp.CallToolResult, WorkdayOutput, error) {
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, WorkdayOutput{}, err
	}

	code, found, err := s.ports.Workday.RecentWorkday(ctx, date, input.ConsiderNextYear)
	if err != nil || !found {
		return nil, WorkdayOutput{}, err
	}
	return nil, workdayOutput(code.Date()), nil
}

func (s *Server) handleNextWorkday(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NextWorkdayInput,
) (*mcp.CallToolResult, WorkdayOutput, error) {
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, WorkdayOutput{}, err
	}

	count := defaultNextCount
	if input.Count != nil {
		count = *input.Count
	}

	next, found, err := s.ports.Workday.NextWorkday(ctx, date, count, input.ConsiderNextYear)
	if err != nil || !found {
		return nil, WorkdayOutput{}, err
	}
	return nil, workdayOutput(next), nil
}

func (s *Server) handleIsWorkday(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input IsWorkdayInput,
) (*mcp.CallToolResult, IsWorkdayOutput, error) {
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, IsWorkdayOutput{}, err
	}

	ok, err := s.ports.Workday.IsWorkday(ctx, date, input.ConsiderNextYear)
	if err != nil {
		return nil, IsWorkdayOutput{}, err
	}
	return nil, IsWorkdayOutput{Date: date.Format(time.DateOnly), Workday: ok}, nil
}

func workdayOutput(t time.Time) WorkdayOutput {
	return WorkdayOutput{
		Found: true,
		Date:  t.Format(time.DateOnly),
		Code:  domain.DateToCode(t).String(),
	}
}
