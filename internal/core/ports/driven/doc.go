// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Backend: Opens a drawing, renames its layers, saves it
//   - BackendFactory: Creates backends from a job
//   - ConfigStore: Application configuration
//   - JobStore: Run history persistence
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or backend package
package driven
