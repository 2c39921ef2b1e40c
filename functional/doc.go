// Package functional holds the small value types the optics API is expressed in:
// Result for fallible reads and reverse conversions, Option for present-or-absent
// values, and Pair for two-field products.
package functional
