// Package backends contains the four interchangeable rename strategies.
// Each subpackage implements ports/driven.Backend:
//
//   - dxffile: rewrites the drawing exchange file directly
//   - acadcom: drives AutoCAD over raw COM automation
//   - acadauto: convenience COM wrapper, renames the active document
//   - sendkeys: injects -LAYER Rename keystrokes into AutoCAD
//
// The strategies share no state; a job picks exactly one.
package backends
