// Package hash provides the checksum primitive used by the armor format.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 checksum of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
