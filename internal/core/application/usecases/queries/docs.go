// Package queries contains read operations that never mutate state.
// Handlers read straight from the store with raw SQL and return flat response
// structs shaped for the API and the packing slip renderer.
package queries
