// Package extract converts downloaded PDFs into normalized text.
//
// Extraction iterates pages in document order, optionally restricted to an
// explicit allow-list of zero-based page indices, and joins page text with
// single newlines. The concatenated text is then normalized: hyphenation
// artifacts across line breaks are stitched back together, and runs of three
// or more newlines collapse to exactly two so paragraph breaks survive while
// excess blank lines do not.
package extract
