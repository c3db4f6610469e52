// Package carton models the catalog of reusable box styles and their
// on-hand inventory counter.
package carton
