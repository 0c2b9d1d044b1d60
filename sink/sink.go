// Package sink provides the growable write destination used by segio's
// encoders: a contract for requesting writable memory on demand, a growable
// in-memory implementation of it, and a codec that writes fixed-width
// primitive values against the contract.
//
// # The Contract
//
// A Sink hands out contiguous writable regions and tracks how many bytes the
// caller commits:
//
//	region := s.Reserve(4)             // at least 4 writable bytes
//	endian.PutUint32(region, v, engine)
//	s.Commit(4)                        // exactly 4 bytes become part of the output
//
// The region returned by Reserve is valid only until the next Reserve or
// Commit call; callers must not retain it. Commit counts must not exceed the
// most recently reserved region's length. The sink owns the backing storage.
//
// # Writing Values
//
// The Write functions bundle the reserve/put/commit sequence per primitive
// kind:
//
//	var buf sink.Buffer
//	sink.WriteUint32(&buf, 0x01020304, endian.GetBigEndianEngine())
//	buf.Bytes() // [0x01 0x02 0x03 0x04]
package sink

// Sink is a mutable destination that supplies contiguous writable memory on
// demand.
//
// Reserve returns a writable region of at least n bytes; the region may be
// larger. Commit marks the first n bytes of the most recently reserved
// region as written; n must not exceed that region's length, and each
// Reserve admits at most one Commit. Violating the contract is a programming
// error: implementations panic rather than return an error, the same way
// slice indexing does.
type Sink interface {
	Reserve(n int) []byte
	Commit(n int)
}
