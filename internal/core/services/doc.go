// Package services implements the driving ports: rename orchestration,
// the backend registry, settings, run history and the help page. All
// business rules live here; adapters stay thin.
package services
