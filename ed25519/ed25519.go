package ed25519

import (
	"crypto/sha512"

	"github.com/f3rmion/edmultisig/group"
)

// ExpandedPrivateKey is the key material derived from a Seed: the clamped
// secret scalar, its reduction modulo the group order, and the prefix used
// to derive deterministic nonces. It is immutable once created.
type ExpandedPrivateKey struct {
	clamped [32]byte
	scalar  Scalar
	prefix  [32]byte
}

// ExpandPrivateKey hashes seed with SHA-512, clamps the lower half into
// the secret scalar and keeps the upper half as the nonce prefix.
func ExpandPrivateKey(seed Seed) ExpandedPrivateKey {
	digest := sha512.Sum512(seed[:])
	digest[0] &= 248
	digest[31] &= 127
	digest[31] |= 64

	// the clamped value is < 2^255, reduction keeps a·G unchanged
	s, _ := group.NewScalar().SetReducedBytes(digest[:32])

	var key ExpandedPrivateKey
	copy(key.clamped[:], digest[:32])
	key.scalar = ScalarFromGroup(s)
	copy(key.prefix[:], digest[32:])
	return key
}

// Scalar returns the secret scalar a, reduced modulo the group order.
func (k ExpandedPrivateKey) Scalar() Scalar {
	return k.scalar
}

// Prefix returns the nonce derivation prefix.
func (k ExpandedPrivateKey) Prefix() [32]byte {
	return k.prefix
}

// Bytes returns the RFC 8032 expanded key: the clamped scalar before
// reduction followed by the prefix.
func (k ExpandedPrivateKey) Bytes() [ExpandedPrivateKeySize]byte {
	var out [ExpandedPrivateKeySize]byte
	copy(out[:32], k.clamped[:])
	copy(out[32:], k.prefix[:])
	return out
}

// PublicKey returns a·G.
func (k ExpandedPrivateKey) PublicKey() PublicKey {
	return PublicKeyFromPoint(group.NewPoint().ScalarBaseMult(k.SecretScalar()))
}

// SecretScalar returns a fresh copy of the secret scalar a as a group
// element, for protocols that operate on the scalar directly.
func (k ExpandedPrivateKey) SecretScalar() *group.Scalar {
	// always canonical, ExpandPrivateKey reduces it
	a, _ := k.scalar.Group()
	return a
}

// DerivePublicKey returns the public key for seed.
func DerivePublicKey(seed Seed) PublicKey {
	return ExpandPrivateKey(seed).PublicKey()
}

// Challenge computes the Ed25519 challenge SHA-512(R ‖ A ‖ M) mod L.
func Challenge(r [32]byte, publicKey PublicKey, message []byte) *group.Scalar {
	return group.HashToScalar(r[:], publicKey[:], message)
}

// Sign signs message with seed following RFC 8032. publicKey must be the
// key derived from seed; it is taken as an argument so callers holding
// it do not pay for another scalar multiplication.
func Sign(message []byte, publicKey PublicKey, seed Seed) Signature {
	key := ExpandPrivateKey(seed)
	prefix := key.Prefix()

	r := group.HashToScalar(prefix[:], message)
	var encodedR [32]byte
	copy(encodedR[:], group.NewPoint().ScalarBaseMult(r).Bytes())

	k := Challenge(encodedR, publicKey, message)
	s := group.NewScalar().MulAdd(k, key.SecretScalar(), r)

	return NewSignature(encodedR, ScalarFromGroup(s))
}

// Verify reports whether sig is a valid signature of message by
// publicKey. It rejects non-canonical s, public keys that are off the
// curve or of small order, and R encodings that are off the curve.
func Verify(sig Signature, message []byte, publicKey PublicKey) bool {
	A, err := publicKey.Point()
	if err != nil {
		return false
	}

	s, err := sig.S().Group()
	if err != nil {
		return false
	}

	encodedR := sig.R()
	if _, err := group.NewPoint().SetBytes(encodedR[:]); err != nil {
		return false
	}

	k := Challenge(encodedR, publicKey, message)

	// R' = s·B - k·A
	minusA := group.NewPoint().Negate(A)
	check := group.NewPoint().VarTimeDoubleScalarBaseMult(k, minusA, s)

	var encodedCheck [32]byte
	copy(encodedCheck[:], check.Bytes())
	return encodedCheck == encodedR
}
