package multisig

import (
	"fmt"
	"slices"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/group"
)

// DelinearizedPartialSign computes this cosigner's share
//
//	s_i = r_i + H(R ‖ P_agg ‖ M)·a_i·priv_i  (mod L)
//
// aggregateCommitment must be the sum of every cosigner's commitment for
// this session (see AggregateCommitments); passing the cosigner's own
// commitment instead yields a share that will not aggregate into a valid
// signature. publicKeys is the agreed cosigner order, and ownPublicKey
// must appear in it and belong to ownSeed.
func DelinearizedPartialSign(
	message []byte,
	aggregateCommitment Commitment,
	nonce Nonce,
	publicKeys []ed25519.PublicKey,
	ownPublicKey ed25519.PublicKey,
	ownSeed ed25519.Seed,
) (PartialSignature, error) {
	if len(publicKeys) == 0 {
		return PartialSignature{}, ErrNoCosigners
	}
	if !slices.Contains(publicKeys, ownPublicKey) {
		return PartialSignature{}, ErrNotCosigner
	}

	key := ed25519.ExpandPrivateKey(ownSeed)
	if key.PublicKey() != ownPublicKey {
		return PartialSignature{}, ErrKeyMismatch
	}

	r, err := scalarOf(nonce)
	if err != nil {
		return PartialSignature{}, fmt.Errorf("nonce: %w", err)
	}
	if _, err := aggregateCommitment.point(); err != nil {
		return PartialSignature{}, fmt.Errorf("aggregate commitment: %w", err)
	}

	hash := HashPublicKeys(publicKeys)
	aggregateKey, err := AggregateDelinearizedPublicKeys(hash, publicKeys)
	if err != nil {
		return PartialSignature{}, err
	}

	e := ed25519.Challenge(aggregateCommitment, aggregateKey, message)

	x := group.NewScalar().Mul(coefficient(hash, ownPublicKey), key.SecretScalar())
	s := group.NewScalar().MulAdd(e, x, r)

	var out PartialSignature
	copy(out[:], s.Bytes())
	return out, nil
}

// PartialSignWithKey is DelinearizedPartialSign for callers that already
// hold the group's aggregate key and their delinearized private key, as
// the session layer does. It performs no membership checks.
func PartialSignWithKey(
	message []byte,
	aggregateCommitment Commitment,
	nonce Nonce,
	aggregateKey ed25519.PublicKey,
	privateKey DelinearizedPrivateKey,
) (PartialSignature, error) {
	r, err := scalarOf(nonce)
	if err != nil {
		return PartialSignature{}, fmt.Errorf("nonce: %w", err)
	}
	x, err := scalarOf(privateKey)
	if err != nil {
		return PartialSignature{}, fmt.Errorf("private key: %w", err)
	}
	if _, err := aggregateCommitment.point(); err != nil {
		return PartialSignature{}, fmt.Errorf("aggregate commitment: %w", err)
	}
	if _, err := aggregateKey.Point(); err != nil {
		return PartialSignature{}, fmt.Errorf("aggregate key: %w", err)
	}

	e := ed25519.Challenge(aggregateCommitment, aggregateKey, message)
	s := group.NewScalar().MulAdd(e, x, r)

	var out PartialSignature
	copy(out[:], s.Bytes())
	return out, nil
}

// AddScalars returns a + b (mod L). Both inputs must be canonical.
func AddScalars(a, b ed25519.Scalar) (ed25519.Scalar, error) {
	x, err := a.Group()
	if err != nil {
		return ed25519.Scalar{}, err
	}
	y, err := b.Group()
	if err != nil {
		return ed25519.Scalar{}, err
	}
	return ed25519.ScalarFromGroup(group.NewScalar().Add(x, y)), nil
}

// AggregatePartialSignatures folds every cosigner's share into s and
// returns the signature R ‖ s. The order of partials does not matter, but
// all of them must be present: the result of a partial set is a
// well-formed signature that fails verification.
func AggregatePartialSignatures(aggregateCommitment Commitment, partials []PartialSignature) (ed25519.Signature, error) {
	if len(partials) == 0 {
		return ed25519.Signature{}, ErrNoCosigners
	}

	var s ed25519.Scalar
	for i, p := range partials {
		var err error
		s, err = AddScalars(s, p.Scalar())
		if err != nil {
			return ed25519.Signature{}, fmt.Errorf("partial signature %d: %w", i, err)
		}
	}
	return ed25519.NewSignature(aggregateCommitment, s), nil
}
