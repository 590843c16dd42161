// Package common holds small helpers shared by the client packages.
package common

// WipeByteArray zeroes b in place. Use it on password buffers once they have
// been consumed. A nil slice is fine.
func WipeByteArray(b []byte) {
	clear(b)
}
