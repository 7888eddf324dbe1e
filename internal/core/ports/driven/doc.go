// Package driven defines the driven (secondary) ports of the hexagon.
//
// Driven ports are the interfaces core services require from
// infrastructure. They are implemented by internal/adapters/driven.
package driven
