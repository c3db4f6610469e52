// Package order models the local mirror of an external sales order.
//
// The package includes:
//   - Order: aggregate root carrying the header fields shown on pack screens
//   - Line: one product entry with the ordered quantity that bounds packing
//
// Orders are imported once, before the first pack starts, and are not edited
// afterwards. Allocation code reads lines through Order.Line so that a line id
// of another order is reported as not found.
package order
