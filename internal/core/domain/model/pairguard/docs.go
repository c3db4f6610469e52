// Package pairguard keeps the permanent per-order history of which order
// lines have shared a box.
//
// Once two lines were packed together in a box, that box is their anchor: they
// may be box-mates again only in the anchor. The history outlives packs and
// deleted boxes.
package pairguard
