// Package kernel holds the value objects shared by every aggregate of the
// packing domain:
//   - UUID: identifier of orders, lines, packs, boxes, items and carton types
//   - Dimensions: a validated length x width x height triple in inches
package kernel
