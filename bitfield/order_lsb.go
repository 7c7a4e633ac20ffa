//go:build !bitorder_msb

package bitfield

// MSBFirst reports whether the first declared field occupies the most significant bits.
const MSBFirst = false
