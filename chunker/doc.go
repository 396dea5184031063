// Package chunker splits normalized text into overlapping windows suitable
// for downstream embedding and retrieval.
//
// Splitting walks a coarse-to-fine separator ladder (paragraph break, line
// break, sentence end, space, character) and always splits on the coarsest
// separator present, so chunk boundaries land where they disturb the text
// least. Pieces keep their trailing separator, which means concatenating all
// pieces reproduces the input exactly. Pieces are then merged left to right
// into chunks of at most the configured size, with the tail of each finished
// chunk repeated at the start of the next to preserve context across the cut.
package chunker
