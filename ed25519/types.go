package ed25519

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/f3rmion/edmultisig/group"
)

const (
	// SeedSize is the size of a private key seed.
	SeedSize = 32
	// PublicKeySize is the size of a compressed public key.
	PublicKeySize = 32
	// SignatureSize is the size of a signature, R ‖ s.
	SignatureSize = 64
	// ScalarSize is the size of an encoded scalar.
	ScalarSize = 32
	// ExpandedPrivateKeySize is the size of an expanded private key,
	// clamped scalar ‖ prefix.
	ExpandedPrivateKeySize = 64
)

var (
	// ErrInvalidLength is returned when a fixed-size value is built from
	// a slice of the wrong length.
	ErrInvalidLength = errors.New("ed25519: invalid length")

	// ErrNonCanonicalScalar is returned for scalars that are not
	// strictly less than the group order.
	ErrNonCanonicalScalar = errors.New("ed25519: non-canonical scalar")

	// ErrInvalidPoint is returned for encodings that are not points on
	// the curve, or that are of small order where that is disallowed.
	ErrInvalidPoint = errors.New("ed25519: invalid point")
)

// Seed is a 32-byte private key seed.
type Seed [SeedSize]byte

// PublicKey is a compressed Ed25519 public key.
type PublicKey [PublicKeySize]byte

// Signature is an Ed25519 signature, the compressed point R followed by
// the scalar s.
type Signature [SignatureSize]byte

// Scalar is a 32-byte little-endian scalar modulo the group order.
type Scalar [ScalarSize]byte

func checkLength(name string, data []byte, want int) error {
	if len(data) != want {
		return fmt.Errorf("%w: %s must be %d bytes, got %d", ErrInvalidLength, name, want, len(data))
	}
	return nil
}

// SeedFromBytes copies data into a Seed.
func SeedFromBytes(data []byte) (Seed, error) {
	var s Seed
	if err := checkLength("seed", data, SeedSize); err != nil {
		return s, err
	}
	copy(s[:], data)
	return s, nil
}

// PublicKeyFromBytes copies data into a PublicKey. The encoding is not
// decoded here; use [PublicKey.Point] to validate it.
func PublicKeyFromBytes(data []byte) (PublicKey, error) {
	var pk PublicKey
	if err := checkLength("public key", data, PublicKeySize); err != nil {
		return pk, err
	}
	copy(pk[:], data)
	return pk, nil
}

// SignatureFromBytes copies data into a Signature.
func SignatureFromBytes(data []byte) (Signature, error) {
	var sig Signature
	if err := checkLength("signature", data, SignatureSize); err != nil {
		return sig, err
	}
	copy(sig[:], data)
	return sig, nil
}

// ScalarFromBytes copies data into a Scalar after checking that it is
// canonical.
func ScalarFromBytes(data []byte) (Scalar, error) {
	var s Scalar
	if err := checkLength("scalar", data, ScalarSize); err != nil {
		return s, err
	}
	copy(s[:], data)
	if _, err := s.Group(); err != nil {
		return Scalar{}, err
	}
	return s, nil
}

// ScalarFromGroup encodes a group scalar.
func ScalarFromGroup(s *group.Scalar) Scalar {
	var out Scalar
	copy(out[:], s.Bytes())
	return out
}

// Group decodes s into a group scalar.
func (s Scalar) Group() (*group.Scalar, error) {
	gs, err := group.NewScalar().SetCanonicalBytes(s[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %x", ErrNonCanonicalScalar, s[:])
	}
	return gs, nil
}

// IsZero reports whether s encodes zero.
func (s Scalar) IsZero() bool {
	return s == Scalar{}
}

// String returns s in hex.
func (s Scalar) String() string {
	return hex.EncodeToString(s[:])
}

// PublicKeyFromPoint compresses p into a PublicKey.
func PublicKeyFromPoint(p *group.Point) PublicKey {
	var pk PublicKey
	copy(pk[:], p.Bytes())
	return pk
}

// Point decompresses pk. It fails if pk is not on the curve or is of
// small order; such keys cannot belong to an honest signer.
func (pk PublicKey) Point() (*group.Point, error) {
	p, err := group.NewPoint().SetBytes(pk[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPoint, pk)
	}
	if p.IsSmallOrder() {
		return nil, fmt.Errorf("%w: %s has small order", ErrInvalidPoint, pk)
	}
	return p, nil
}

// String returns pk in hex.
func (pk PublicKey) String() string {
	return hex.EncodeToString(pk[:])
}

// R returns the encoded commitment point of sig.
func (sig Signature) R() [32]byte {
	var r [32]byte
	copy(r[:], sig[:32])
	return r
}

// S returns the scalar half of sig. It is not checked for canonicity.
func (sig Signature) S() Scalar {
	var s Scalar
	copy(s[:], sig[32:])
	return s
}

// String returns sig in hex.
func (sig Signature) String() string {
	return hex.EncodeToString(sig[:])
}

// NewSignature joins an encoded point R and a scalar s.
func NewSignature(r [32]byte, s Scalar) Signature {
	var sig Signature
	copy(sig[:32], r[:])
	copy(sig[32:], s[:])
	return sig
}
