package tui

import "errors"

// ErrMissingWorkdayService is returned when the workday service is not provided.
var ErrMissingWorkdayService = errors.New("tui: workday service is required")
