package multisig

import (
	"fmt"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/group"
	"golang.org/x/crypto/blake2b"
)

// HashPublicKeys hashes the ordered concatenation of publicKeys with
// BLAKE2b-256. Every cosigner must pass the keys in the same order.
func HashPublicKeys(publicKeys []ed25519.PublicKey) PublicKeysHash {
	h, _ := blake2b.New256(nil)
	for _, pk := range publicKeys {
		h.Write(pk[:])
	}

	var out PublicKeysHash
	copy(out[:], h.Sum(nil))
	return out
}

// coefficient computes a_i = SHA-512(hash ‖ P_i) mod L.
func coefficient(hash PublicKeysHash, publicKey ed25519.PublicKey) *group.Scalar {
	return group.HashToScalar(hash[:], publicKey[:])
}

func delinearize(hash PublicKeysHash, publicKey ed25519.PublicKey) (*group.Point, error) {
	P, err := publicKey.Point()
	if err != nil {
		return nil, err
	}
	return group.NewPoint().ScalarMult(coefficient(hash, publicKey), P), nil
}

// DelinearizePublicKey returns a_i·P_i for the cosigner key publicKey in
// the group identified by hash.
func DelinearizePublicKey(hash PublicKeysHash, publicKey ed25519.PublicKey) (ed25519.PublicKey, error) {
	p, err := delinearize(hash, publicKey)
	if err != nil {
		return ed25519.PublicKey{}, err
	}
	return ed25519.PublicKeyFromPoint(p), nil
}

// DeriveDelinearizedPrivateKey returns a_i·priv_i for the caller's own
// key. publicKey must be the key derived from seed.
func DeriveDelinearizedPrivateKey(hash PublicKeysHash, publicKey ed25519.PublicKey, seed ed25519.Seed) DelinearizedPrivateKey {
	priv := ed25519.ExpandPrivateKey(seed).SecretScalar()
	x := group.NewScalar().Mul(coefficient(hash, publicKey), priv)

	var out DelinearizedPrivateKey
	copy(out[:], x.Bytes())
	return out
}

// AggregateDelinearizedPublicKeys returns Σ a_i·P_i over publicKeys in
// order. The result is an ordinary Ed25519 public key.
func AggregateDelinearizedPublicKeys(hash PublicKeysHash, publicKeys []ed25519.PublicKey) (ed25519.PublicKey, error) {
	if len(publicKeys) == 0 {
		return ed25519.PublicKey{}, ErrNoCosigners
	}

	sum := group.NewPoint()
	for i, pk := range publicKeys {
		p, err := delinearize(hash, pk)
		if err != nil {
			return ed25519.PublicKey{}, fmt.Errorf("public key %d: %w", i, err)
		}
		sum.Add(sum, p)
	}
	return ed25519.PublicKeyFromPoint(sum), nil
}
