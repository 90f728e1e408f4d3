package mcp

import (
	"github.com/custodia-labs/bizday/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Workday resolves business days.
	Workday driving.WorkdayService
	// Calendar exposes imported calendars. Optional.
	Calendar driving.CalendarService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Workday == nil {
		return ErrMissingWorkdayService
	}
	return nil
}
