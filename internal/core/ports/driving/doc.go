// Package driving defines the interfaces through which the outside world
// drives the core (CLI, TUI, MCP server).
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; adapters call them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or backend package
package driving
