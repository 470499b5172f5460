package multisig

import (
	"fmt"

	"github.com/f3rmion/edmultisig/ed25519"
)

// Multi-value inputs cross process boundaries as a flat concatenation of
// 32-byte elements plus an explicit count.

func split[T ~[32]byte](name string, flat []byte, count int) ([]T, error) {
	if count < 0 || len(flat)%32 != 0 || len(flat)/32 != count {
		return nil, fmt.Errorf("%w: %d bytes do not hold %d %s",
			ed25519.ErrInvalidLength, len(flat), count, name)
	}
	out := make([]T, count)
	for i := range out {
		copy(out[i][:], flat[i*32:(i+1)*32])
	}
	return out, nil
}

func join[T ~[32]byte](items []T) []byte {
	flat := make([]byte, 0, len(items)*32)
	for _, item := range items {
		flat = append(flat, item[:]...)
	}
	return flat
}

// SplitPublicKeys parses count concatenated public keys.
func SplitPublicKeys(flat []byte, count int) ([]ed25519.PublicKey, error) {
	return split[ed25519.PublicKey]("public keys", flat, count)
}

// JoinPublicKeys concatenates publicKeys in order.
func JoinPublicKeys(publicKeys []ed25519.PublicKey) []byte {
	return join(publicKeys)
}

// SplitCommitments parses count concatenated commitments.
func SplitCommitments(flat []byte, count int) ([]Commitment, error) {
	return split[Commitment]("commitments", flat, count)
}

// JoinCommitments concatenates commitments in order.
func JoinCommitments(commitments []Commitment) []byte {
	return join(commitments)
}

// SplitPartialSignatures parses count concatenated partial signatures.
func SplitPartialSignatures(flat []byte, count int) ([]PartialSignature, error) {
	return split[PartialSignature]("partial signatures", flat, count)
}
