// Package layout maps board cell indices to physical gantry coordinates.
//
// A board is a grid of Columns x Rows cells. Column centers are separated by a
// step function over the gap index: the two outermost gaps use the margin
// distance, the gaps next to them use the transition distance and every
// interior gap uses the standard distance. Row centers are evenly spaced.
//
// Build is a pure function: the same Spacing always yields a bit-identical
// Table. Column positions are accumulated left to right; row positions are
// computed directly from the row index so no rounding error builds up.
package layout
