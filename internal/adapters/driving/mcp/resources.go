package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/bizday/internal/core/domain"
)

const uriScheme = "bizday://"

// registerResources exposes imported calendars as MCP resources.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "calendars",
		Name:        "calendars",
		Description: "Years with an imported business day calendar",
		MIMEType:    "application/json",
	}, s.handleCalendarsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "calendars/{year}",
		Name:        "calendar-year",
		Description: "Business days of an imported year",
		MIMEType:    "application/json",
	}, s.handleCalendarYearResource)
}

func (s *Server) handleCalendarsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Calendar == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	years, err := s.ports.Calendar.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}
	if years == nil {
		years = []int{}
	}

	data, err := json.Marshal(years)
	if err != nil {
		return nil, fmt.Errorf("marshalling calendars: %w", err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// calendarYear is the JSON form of an imported year.
type calendarYear struct {
	Year     int      `json:"year"`
	Count    int      `json:"count"`
	Workdays []string `json:"workdays"`
}

func (s *Server) handleCalendarYearResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Calendar == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	year, ok := extractYear(req.Params.URI)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	list, err := s.ports.Calendar.Show(ctx, year)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("reading calendar %d: %w", year, err)
	}

	out := calendarYear{Year: year, Count: len(list), Workdays: make([]string, len(list))}
	for i, code := range list {
		out.Workdays[i] = code.String()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling calendar %d: %w", year, err)
	}
	return jsonResource(req.Params.URI, string(data)), nil
}

// extractYear extracts the year from a URI like bizday://calendars/{year}.
func extractYear(uri string) (int, bool) {
	const prefix = uriScheme + "calendars/"
	if !strings.HasPrefix(uri, prefix) {
		return 0, false
	}
	year, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil || year < 1 || year > 9999 {
		return 0, false
	}
	return year, true
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}
