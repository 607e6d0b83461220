// Package traverse produces ordered multi-dimensional index sequences over
// a layout. Traversal follows the layout's stride order from the slowest to
// the fastest dimension, so consecutive indices map to non-decreasing flat
// offsets, strictly increasing by one when the layout is contiguous, which
// makes the scan a linear memory walk.
//
// Traversal never mutates the layout and can be restarted any number of
// times; every restart yields the identical sequence.
package traverse
