// Package filter provides the transient smoother that softens the seam a
// wrap-around border leaves between the margin and the interior.
//
// The smoother runs a horizontal pass over every row and then a vertical
// pass over every column. On each side it recomputes a band of Size
// samples next to the seam with one of:
//   - Linear: a linear gradient from the first interior sample out to the
//     wrapped margin samples
//   - Gauss: a 5-tap Gaussian across the seam, written to the margin only
//   - GaussDestructive: the same Gaussian, written on both sides of the seam
//
// Convolution scratch lives on the stack and is bounded by MaxTaps, so a
// Transient may be shared by concurrent callers.
package filter
