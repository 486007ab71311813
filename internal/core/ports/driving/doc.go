// Package driving defines the interfaces through which the outside world
// drives the engine core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The excluded request-handling layer consumes these interfaces; core
// services implement them.
package driving
