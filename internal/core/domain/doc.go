// Package domain defines the core business entities for bizday.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BusinessDayCode: A sortable YYYYMMDD identifier for a calendar date
//   - WorkdayList: The ordered business days of a single year
//   - Codec: Conversions between dates and codes
//   - Settings: Calendar provider and storage configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
