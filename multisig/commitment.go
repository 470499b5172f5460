package multisig

import (
	"fmt"

	"github.com/f3rmion/edmultisig/group"
)

// CreateCommitment reduces randomness modulo the group order into the
// secret nonce r and returns it with its commitment R = r·G.
//
// randomness must come from a cryptographically secure source and must
// never be passed twice for the same key: this function is deterministic
// in its input and cannot detect reuse. It returns
// ErrDegenerateCommitment if the nonce is zero or R is the identity; the
// caller should retry with fresh randomness.
func CreateCommitment(randomness [RandomnessSize]byte) (Nonce, Commitment, error) {
	r, err := group.NewScalar().SetReducedBytes(randomness[:])
	if err != nil {
		return Nonce{}, Commitment{}, err
	}
	if r.IsZero() {
		return Nonce{}, Commitment{}, ErrDegenerateCommitment
	}

	R := group.NewPoint().ScalarBaseMult(r)
	if R.IsIdentity() {
		return Nonce{}, Commitment{}, ErrDegenerateCommitment
	}

	var nonce Nonce
	copy(nonce[:], r.Bytes())
	return nonce, commitmentFromPoint(R), nil
}

// AggregateCommitments sums the commitments of all cosigners, in the
// cosigner order agreed for the session. Every commitment must decode to
// a point of large order.
func AggregateCommitments(commitments []Commitment) (Commitment, error) {
	if len(commitments) == 0 {
		return Commitment{}, ErrNoCosigners
	}

	sum := group.NewPoint()
	for i, c := range commitments {
		R, err := c.point()
		if err != nil {
			return Commitment{}, fmt.Errorf("commitment %d: %w", i, err)
		}
		sum.Add(sum, R)
	}
	return commitmentFromPoint(sum), nil
}
