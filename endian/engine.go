// Package endian provides byte order utilities for binary framing.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface, so code that both
// reads fixed-width integers and appends them to growing buffers can take one
// dependency. The returned engines are the stdlib binary.BigEndian and
// binary.LittleEndian values: immutable, stateless, and safe for concurrent
// use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it, so an
// EndianEngine interoperates with any code written against the stdlib
// interfaces.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, used for network-order
// framing such as the armor checksum.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
