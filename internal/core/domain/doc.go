// Package domain defines the core business entities for Prelayn.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Prefix: A validated string prepended to layer names
//   - Layer: A named grouping construct inside a drawing
//   - BackendType: A descriptor for one of the rename backends
//   - RenameJob: One requested rename operation
//   - RenameReport: The outcome of a rename operation
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
