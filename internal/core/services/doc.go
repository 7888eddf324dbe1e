// Package services implements the driving ports of the hexagon.
//
// CalculatorService is the heart of mathop: it validates operands,
// evaluates the requested operation, and records every successful
// outcome in an in-memory history that is owned exclusively by the
// service. SettingsService layers defaults over the config store.
package services
