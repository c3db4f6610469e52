// Package pack models a packing session: the boxes of one order and the line
// quantities held by each box.
//
// The package includes:
//   - Pack: aggregate root, owns boxes and enforces quantity invariants
//   - Box and Item: a shipping box and the per-line quantities inside it
//   - BoxSpec: CatalogSpec or CustomSpec, what a box physically is
//   - Weight: an entered weight and its rounded-up pound value
//   - Status: in_progress -> complete
//
// All mutations fail with ErrPackIsNotInProgress once a pack is complete.
// Business failures are typed (OverpackError, OverweightError, BoxNotEmptyError,
// DuplicateBoxError, CompletionError, AllocationConflictError) and match their
// sentinels through errors.Is.
package pack
