// Package tui provides an interactive month calendar for browsing business days.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/bizday/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Workday resolves business days.
	Workday driving.WorkdayService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Workday == nil {
		return ErrMissingWorkdayService
	}
	return nil
}
