// Package services provides domain services that coordinate several aggregates
// of the packing domain.
//
// The package includes:
//   - Allocator: applies line quantities to boxes of a pack while enforcing the
//     per-order pair rule kept in pairguard.Index
//
// Domain services hold no state; callers load the aggregates inside one unit of
// work and persist them after the service returns.
package services
