// Package ed25519 implements single-signer Ed25519 (RFC 8032) on top of
// the [group] arithmetic, together with the fixed-size value types shared
// by the multisig packages.
//
// Every value that crosses a package or process boundary is a distinct
// fixed-length array type, so a scalar cannot be passed where a point is
// expected:
//
//   - [Seed]: 32 secret bytes, the sole input for a party's identity
//   - [PublicKey]: 32-byte compressed point
//   - [Signature]: 64 bytes, R ‖ s
//   - [Scalar]: 32-byte canonical scalar
//
// Use the FromBytes constructors to convert untrusted slices. They fail
// with [ErrInvalidLength] rather than truncating or padding.
//
// # Signing
//
//	seed, _ := ed25519.SeedFromBytes(secret)
//	pub := ed25519.DerivePublicKey(seed)
//	sig := ed25519.Sign(message, pub, seed)
//
//	if !ed25519.Verify(sig, message, pub) {
//		// reject
//	}
//
// Signatures are byte-for-byte identical to crypto/ed25519. Verify is the
// same verifier used for aggregate multisig signatures; a signature
// produced jointly by several cosigners is indistinguishable from one
// produced by Sign.
package ed25519
