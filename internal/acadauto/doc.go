// Package acadauto is a small convenience wrapper over the AutoCAD COM
// automation interface. It hides the raw IDispatch plumbing behind a
// Session/Document/Layer API so callers can attach to a running AutoCAD
// (or launch one) and walk the layers of the active document.
//
// The package only builds on Windows; everywhere else the constructor
// reports that automation is unavailable.
package acadauto
