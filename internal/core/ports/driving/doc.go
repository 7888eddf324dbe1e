// Package driving defines the driving (primary) ports of the hexagon.
//
// Driving ports are the interfaces through which external actors
// (the CLI, the MCP server) invoke core services. They are implemented
// by internal/core/services and consumed by internal/adapters/driving.
package driving
