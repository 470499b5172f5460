package multisig

import (
	"encoding/hex"
	"errors"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/group"
)

const (
	// RandomnessSize is the number of random bytes consumed by
	// CreateCommitment.
	RandomnessSize = 32
	// CommitmentSize is the size of a compressed commitment point.
	CommitmentSize = 32
	// PublicKeysHashSize is the size of a PublicKeysHash.
	PublicKeysHashSize = 32
)

var (
	// ErrDegenerateCommitment is returned when randomness reduces to a
	// zero nonce. The caller must retry with fresh randomness.
	ErrDegenerateCommitment = errors.New("multisig: degenerate commitment")

	// ErrNoCosigners is returned when an operation receives an empty
	// key, commitment or share list.
	ErrNoCosigners = errors.New("multisig: no cosigners")

	// ErrNotCosigner is returned when a signer's public key is not part
	// of the cosigner list.
	ErrNotCosigner = errors.New("multisig: public key is not a cosigner")

	// ErrKeyMismatch is returned when a public key does not belong to
	// the seed it is paired with.
	ErrKeyMismatch = errors.New("multisig: public key does not match seed")
)

// Nonce is a cosigner's secret commitment scalar r. It must be used for
// at most one signing session.
type Nonce [32]byte

// Commitment is the compressed point R = r·G published for a nonce, or
// the sum of all cosigners' commitments.
type Commitment [CommitmentSize]byte

// PublicKeysHash identifies an ordered list of cosigner public keys.
type PublicKeysHash [PublicKeysHashSize]byte

// DelinearizedPrivateKey is a_i·priv_i. It never leaves its owner.
type DelinearizedPrivateKey [32]byte

// PartialSignature is one cosigner's share s_i of the final scalar.
type PartialSignature [32]byte

// String returns c in hex.
func (c Commitment) String() string {
	return hex.EncodeToString(c[:])
}

// String returns h in hex.
func (h PublicKeysHash) String() string {
	return hex.EncodeToString(h[:])
}

// String returns s in hex.
func (s PartialSignature) String() string {
	return hex.EncodeToString(s[:])
}

// Scalar returns s as a generic scalar, e.g. for AddScalars.
func (s PartialSignature) Scalar() ed25519.Scalar {
	return ed25519.Scalar(s)
}

// point decodes c, rejecting off-curve and small-order encodings.
func (c Commitment) point() (*group.Point, error) {
	// same validation rules as public keys
	return ed25519.PublicKey(c).Point()
}

func commitmentFromPoint(p *group.Point) Commitment {
	var c Commitment
	copy(c[:], p.Bytes())
	return c
}

func scalarOf(b [32]byte) (*group.Scalar, error) {
	return ed25519.Scalar(b).Group()
}
