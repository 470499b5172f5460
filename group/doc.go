// Package group implements scalar and point arithmetic over the
// edwards25519 group used by Ed25519 signatures and the delinearized
// multisig scheme.
//
// The package provides two concrete types:
//
//   - [Scalar]: integers modulo the group order L
//   - [Point]: elements of the edwards25519 group, encoded compressed
//
// # Design Philosophy
//
// Operations use a mutable receiver pattern. Methods like Add, Mul and
// ScalarMult set the receiver to the result and return it, allowing
// method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := group.NewScalar().MulAdd(b, c, a)
//
//	// Compute s*G
//	R := group.NewPoint().ScalarBaseMult(s)
//
// Decoding is the only place where untrusted data enters the package, so
// SetCanonicalBytes and SetBytes return errors rather than panicking.
// Everything else operates on values that are already valid.
//
// # Encodings
//
// Scalars are 32 bytes, little-endian, and canonical (strictly less than
// L). Points are the 32-byte compressed encoding from RFC 8032: the y
// coordinate in little-endian with the sign of x in the top bit.
//
// # Security Considerations
//
//   - Scalar arithmetic is always reduced modulo L.
//   - SetBytes rejects encodings that are not on the curve. Callers that
//     accept points from other parties should also reject IsSmallOrder
//     points.
//   - ScalarMult and ScalarBaseMult are constant time; the
//     VarTimeDoubleScalarBaseMult helper is only for public inputs such as
//     signature verification.
package group
