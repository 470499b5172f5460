package multisig

import (
	"bytes"
	stded25519 "crypto/ed25519"
	"crypto/rand"
	"fmt"
	"math"
	"testing"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cosigner struct {
	seed   ed25519.Seed
	pub    ed25519.PublicKey
	nonce  Nonce
	commit Commitment
}

func newCosigners(t *testing.T, n int) []*cosigner {
	t.Helper()
	cs := make([]*cosigner, n)
	for i := range cs {
		var seed ed25519.Seed
		_, err := rand.Read(seed[:])
		require.NoError(t, err)
		cs[i] = &cosigner{seed: seed, pub: ed25519.DerivePublicKey(seed)}
	}
	return cs
}

func publicKeysOf(cs []*cosigner) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, len(cs))
	for i, c := range cs {
		keys[i] = c.pub
	}
	return keys
}

func commit(t *testing.T, cs []*cosigner) Commitment {
	t.Helper()
	commitments := make([]Commitment, len(cs))
	for i, c := range cs {
		var randomness [RandomnessSize]byte
		_, err := rand.Read(randomness[:])
		require.NoError(t, err)

		c.nonce, c.commit, err = CreateCommitment(randomness)
		require.NoError(t, err)
		commitments[i] = c.commit
	}
	agg, err := AggregateCommitments(commitments)
	require.NoError(t, err)
	return agg
}

func multiSign(t *testing.T, cs []*cosigner, message []byte) (ed25519.Signature, ed25519.PublicKey) {
	t.Helper()
	keys := publicKeysOf(cs)
	aggCommitment := commit(t, cs)

	partials := make([]PartialSignature, len(cs))
	for i, c := range cs {
		var err error
		partials[i], err = DelinearizedPartialSign(message, aggCommitment, c.nonce, keys, c.pub, c.seed)
		require.NoError(t, err)
	}

	sig, err := AggregatePartialSignatures(aggCommitment, partials)
	require.NoError(t, err)

	aggKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(keys), keys)
	require.NoError(t, err)
	return sig, aggKey
}

func TestThreeCosignerVector(t *testing.T) {
	seeds := []ed25519.Seed{}
	for _, b := range []byte{0x01, 0x02, 0x03} {
		seeds = append(seeds, ed25519.Seed(bytes.Repeat([]byte{b}, 32)))
	}
	randomness := [][RandomnessSize]byte{}
	for _, b := range []byte{0x11, 0x22, 0x33} {
		randomness = append(randomness, [RandomnessSize]byte(bytes.Repeat([]byte{b}, 32)))
	}
	message := []byte("test")

	keys := make([]ed25519.PublicKey, len(seeds))
	for i, seed := range seeds {
		keys[i] = ed25519.DerivePublicKey(seed)
	}
	assert.Equal(t, "8a88e3dd7409f195fd52db2d3cba5d72ca6709bf1d94121bf3748801b40f6f5c", keys[0].String())

	hash := HashPublicKeys(keys)
	assert.Equal(t, "e082147a607cf803e7be63669536747c23d8e460aef79898f74376bc383a30a0", hash.String())

	aggKey, err := AggregateDelinearizedPublicKeys(hash, keys)
	require.NoError(t, err)
	assert.Equal(t, "95015ba9a17aa13f310f9f5962bda2fc6b037092e291339653b5a85b8d68562c", aggKey.String())

	wantCommitments := []string{
		"857eed804ff087b97f87848f6493e87257a8c5203cb9f422f6e7a7d8a4d299f3",
		"512e1a2060d978a11a9ce65bbb6b98dcf3300b762c520b13fe2e658b583593bf",
		"65892814b0a9bee7ade5ad675c62284ea7e249fba0fcd65fafa007d33817d66a",
	}
	nonces := make([]Nonce, len(seeds))
	commitments := make([]Commitment, len(seeds))
	for i := range seeds {
		nonces[i], commitments[i], err = CreateCommitment(randomness[i])
		require.NoError(t, err)
		assert.Equal(t, wantCommitments[i], commitments[i].String())
	}

	aggCommitment, err := AggregateCommitments(commitments)
	require.NoError(t, err)
	assert.Equal(t, "f453ca5e714e11037bf4bb7db9157ad9bb2061a4877ce4b9cf93400cc2d9228f", aggCommitment.String())

	wantPartials := []string{
		"e7c73034ba0a092fcd71c3b6f96fe9b7a0f73efd4be9c256175f0f2ba079fd08",
		"00707b4b56ff3deb0bfc2889e7ce6a1e80eb6b623f40934844aa11c1c60e0c08",
		"29aaa47a34a0680c5b8800e8cc9df7fad5d70ff7c194eb99d104db8bc7c80807",
	}
	partials := make([]PartialSignature, len(seeds))
	for i, seed := range seeds {
		partials[i], err = DelinearizedPartialSign(message, aggCommitment, nonces[i], keys, keys[i], seed)
		require.NoError(t, err)
		assert.Equal(t, wantPartials[i], partials[i].String())
	}

	sig, err := AggregatePartialSignatures(aggCommitment, partials)
	require.NoError(t, err)
	assert.Equal(t,
		"f453ca5e714e11037bf4bb7db9157ad9bb2061a4877ce4b9cf93400cc2d9228f"+
			"230e5b9d2a479dce5d59f584cfe26cbcf6baba564dbe41392d0efc772e511208",
		sig.String())

	assert.True(t, ed25519.Verify(sig, message, aggKey))
	assert.True(t, stded25519.Verify(aggKey[:], message, sig[:]))

	t.Run("FailsUnderSubsets", func(t *testing.T) {
		for skip := range keys {
			var subset []ed25519.PublicKey
			for i, k := range keys {
				if i != skip {
					subset = append(subset, k)
				}
			}
			subKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(subset), subset)
			require.NoError(t, err)
			assert.False(t, ed25519.Verify(sig, message, subKey), "verified without cosigner %d", skip)
		}
	})
}

func TestMultiSignVerifies(t *testing.T) {
	for n := 1; n <= 6; n++ {
		t.Run(fmt.Sprintf("N=%d", n), func(t *testing.T) {
			cs := newCosigners(t, n)
			message := []byte("hello multisig")

			sig, aggKey := multiSign(t, cs, message)

			assert.True(t, ed25519.Verify(sig, message, aggKey))
			assert.True(t, stded25519.Verify(aggKey[:], message, sig[:]))
			assert.False(t, ed25519.Verify(sig, []byte("wrong message"), aggKey))
		})
	}
}

func TestSignatureBitFlips(t *testing.T) {
	cs := newCosigners(t, 3)
	message := []byte("flip me")
	sig, aggKey := multiSign(t, cs, message)
	require.True(t, ed25519.Verify(sig, message, aggKey))

	for bit := 0; bit < ed25519.SignatureSize*8; bit++ {
		tampered := sig
		tampered[bit/8] ^= 1 << (bit % 8)
		if ed25519.Verify(tampered, message, aggKey) {
			t.Fatalf("signature with bit %d flipped verified", bit)
		}
	}
}

func TestSingleCosignerDiffersFromPlainKey(t *testing.T) {
	cs := newCosigners(t, 1)
	keys := publicKeysOf(cs)
	aggKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(keys), keys)
	require.NoError(t, err)

	// the coefficient applies even to a group of one
	assert.NotEqual(t, cs[0].pub, aggKey)
}

func TestOrderingIsGroupIdentity(t *testing.T) {
	cs := newCosigners(t, 3)
	message := []byte("ordered")
	sig, aggKey := multiSign(t, cs, message)

	reordered := []ed25519.PublicKey{cs[2].pub, cs[0].pub, cs[1].pub}
	assert.NotEqual(t, HashPublicKeys(publicKeysOf(cs)), HashPublicKeys(reordered))

	reorderedKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(reordered), reordered)
	require.NoError(t, err)
	assert.NotEqual(t, aggKey, reorderedKey)
	assert.False(t, ed25519.Verify(sig, message, reorderedKey))

	t.Run("MismatchedOrderBetweenCosigners", func(t *testing.T) {
		keys := publicKeysOf(cs)
		aggCommitment := commit(t, cs)

		partials := make([]PartialSignature, len(cs))
		for i, c := range cs {
			order := keys
			if i == 1 {
				order = reordered
			}
			var err error
			partials[i], err = DelinearizedPartialSign(message, aggCommitment, c.nonce, order, c.pub, c.seed)
			require.NoError(t, err)
		}

		sig, err := AggregatePartialSignatures(aggCommitment, partials)
		require.NoError(t, err)
		assert.False(t, ed25519.Verify(sig, message, aggKey))
		assert.False(t, ed25519.Verify(sig, message, reorderedKey))
	})
}

func TestNonAggregatedCommitmentFails(t *testing.T) {
	cs := newCosigners(t, 3)
	keys := publicKeysOf(cs)
	message := []byte("barrier")
	aggCommitment := commit(t, cs)

	partials := make([]PartialSignature, len(cs))
	for i, c := range cs {
		R := aggCommitment
		if i == 0 {
			// signs against its own commitment only
			R = c.commit
		}
		var err error
		partials[i], err = DelinearizedPartialSign(message, R, c.nonce, keys, c.pub, c.seed)
		require.NoError(t, err)
	}

	sig, err := AggregatePartialSignatures(aggCommitment, partials)
	require.NoError(t, err)

	aggKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(keys), keys)
	require.NoError(t, err)
	assert.False(t, ed25519.Verify(sig, message, aggKey))
}

func TestMissingPartialSignatureFails(t *testing.T) {
	cs := newCosigners(t, 3)
	keys := publicKeysOf(cs)
	message := []byte("all shares")
	aggCommitment := commit(t, cs)

	var partials []PartialSignature
	for _, c := range cs[:2] {
		p, err := DelinearizedPartialSign(message, aggCommitment, c.nonce, keys, c.pub, c.seed)
		require.NoError(t, err)
		partials = append(partials, p)
	}

	sig, err := AggregatePartialSignatures(aggCommitment, partials)
	require.NoError(t, err)

	aggKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(keys), keys)
	require.NoError(t, err)
	assert.False(t, ed25519.Verify(sig, message, aggKey))
}

func TestDelinearization(t *testing.T) {
	cs := newCosigners(t, 3)
	keys := publicKeysOf(cs)
	hash := HashPublicKeys(keys)

	t.Run("PrivateMatchesPublic", func(t *testing.T) {
		for _, c := range cs {
			x := DeriveDelinearizedPrivateKey(hash, c.pub, c.seed)
			xs, err := ed25519.Scalar(x).Group()
			require.NoError(t, err)

			want, err := DelinearizePublicKey(hash, c.pub)
			require.NoError(t, err)
			assert.Equal(t, want, ed25519.PublicKeyFromPoint(group.NewPoint().ScalarBaseMult(xs)))
		}
	})

	t.Run("AggregateIsSumOfDelinearized", func(t *testing.T) {
		sum := group.NewPoint()
		for _, k := range keys {
			d, err := DelinearizePublicKey(hash, k)
			require.NoError(t, err)
			p, err := d.Point()
			require.NoError(t, err)
			sum.Add(sum, p)
		}

		aggKey, err := AggregateDelinearizedPublicKeys(hash, keys)
		require.NoError(t, err)
		assert.Equal(t, aggKey, ed25519.PublicKeyFromPoint(sum))
	})

	t.Run("PartialSignWithKeyMatches", func(t *testing.T) {
		message := []byte("precomputed")
		aggCommitment := commit(t, cs)
		aggKey, err := AggregateDelinearizedPublicKeys(hash, keys)
		require.NoError(t, err)

		for _, c := range cs {
			want, err := DelinearizedPartialSign(message, aggCommitment, c.nonce, keys, c.pub, c.seed)
			require.NoError(t, err)

			x := DeriveDelinearizedPrivateKey(hash, c.pub, c.seed)
			got, err := PartialSignWithKey(message, aggCommitment, c.nonce, aggKey, x)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("RejectsSmallOrderKey", func(t *testing.T) {
		var identity ed25519.PublicKey
		identity[0] = 1

		_, err := DelinearizePublicKey(hash, identity)
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)

		_, err = AggregateDelinearizedPublicKeys(hash, append(keys, identity))
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)
	})

	t.Run("EmptyKeyList", func(t *testing.T) {
		_, err := AggregateDelinearizedPublicKeys(hash, nil)
		assert.ErrorIs(t, err, ErrNoCosigners)
	})
}

func TestRogueKeyAttack(t *testing.T) {
	// The attacker publishes P_rogue = P_target - P_honest, which would make
	// a plain sum of keys equal to P_target, a key the attacker controls.
	honest := newCosigners(t, 1)[0]
	attacker := newCosigners(t, 1)[0]

	Ph, err := honest.pub.Point()
	require.NoError(t, err)
	Pt, err := attacker.pub.Point()
	require.NoError(t, err)
	rogue := ed25519.PublicKeyFromPoint(group.NewPoint().Sub(Pt, Ph))

	keys := []ed25519.PublicKey{honest.pub, rogue}
	aggKey, err := AggregateDelinearizedPublicKeys(HashPublicKeys(keys), keys)
	require.NoError(t, err)

	assert.NotEqual(t, attacker.pub, aggKey)

	message := []byte("steal the funds")
	forged := ed25519.Sign(message, attacker.pub, attacker.seed)
	assert.False(t, ed25519.Verify(forged, message, aggKey))
}

func TestCreateCommitment(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		var randomness [RandomnessSize]byte
		randomness[0] = 42
		nonce, c, err := CreateCommitment(randomness)
		require.NoError(t, err)

		r, err := ed25519.Scalar(nonce).Group()
		require.NoError(t, err)
		assert.Equal(t, c[:], group.NewPoint().ScalarBaseMult(r).Bytes())
	})

	t.Run("Deterministic", func(t *testing.T) {
		var randomness [RandomnessSize]byte
		_, err := rand.Read(randomness[:])
		require.NoError(t, err)

		n1, c1, err := CreateCommitment(randomness)
		require.NoError(t, err)
		n2, c2, err := CreateCommitment(randomness)
		require.NoError(t, err)

		// reuse is the caller's responsibility: nothing here detects it
		assert.Equal(t, n1, n2)
		assert.Equal(t, c1, c2)
	})

	t.Run("ZeroIsDegenerate", func(t *testing.T) {
		_, _, err := CreateCommitment([RandomnessSize]byte{})
		assert.ErrorIs(t, err, ErrDegenerateCommitment)
	})

	t.Run("OrderIsDegenerate", func(t *testing.T) {
		_, _, err := CreateCommitment([RandomnessSize]byte(group.Order()))
		assert.ErrorIs(t, err, ErrDegenerateCommitment)
	})

	t.Run("ReducesModOrder", func(t *testing.T) {
		lPlusOne := [RandomnessSize]byte(group.Order())
		lPlusOne[0]++
		var one [RandomnessSize]byte
		one[0] = 1

		n1, c1, err := CreateCommitment(lPlusOne)
		require.NoError(t, err)
		n2, c2, err := CreateCommitment(one)
		require.NoError(t, err)
		assert.Equal(t, n1, n2)
		assert.Equal(t, c1, c2)
		assert.Equal(t, c1[:], group.Generator().Bytes())
	})
}

func TestAggregateCommitments(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := AggregateCommitments(nil)
		assert.ErrorIs(t, err, ErrNoCosigners)
	})

	t.Run("RejectsSmallOrder", func(t *testing.T) {
		cs := newCosigners(t, 2)
		commit(t, cs)

		var identity Commitment
		identity[0] = 1
		_, err := AggregateCommitments([]Commitment{cs[0].commit, identity, cs[1].commit})
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)
	})

	t.Run("RejectsOffCurve", func(t *testing.T) {
		var bad Commitment
		bad[0] = 2
		_, err := AggregateCommitments([]Commitment{bad})
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)
	})

	t.Run("OrderIndependentSum", func(t *testing.T) {
		cs := newCosigners(t, 3)
		agg := commit(t, cs)
		rev, err := AggregateCommitments([]Commitment{cs[2].commit, cs[1].commit, cs[0].commit})
		require.NoError(t, err)
		assert.Equal(t, agg, rev)
	})
}

func TestAddScalars(t *testing.T) {
	random := func() ed25519.Scalar {
		s, err := group.RandomScalar(rand.Reader)
		require.NoError(t, err)
		return ed25519.ScalarFromGroup(s)
	}
	add := func(a, b ed25519.Scalar) ed25519.Scalar {
		s, err := AddScalars(a, b)
		require.NoError(t, err)
		return s
	}

	a, b, c := random(), random(), random()

	t.Run("Commutative", func(t *testing.T) {
		assert.Equal(t, add(a, b), add(b, a))
	})

	t.Run("Associative", func(t *testing.T) {
		assert.Equal(t, add(add(a, b), c), add(a, add(b, c)))
	})

	t.Run("Identity", func(t *testing.T) {
		assert.Equal(t, a, add(a, ed25519.Scalar{}))
	})

	t.Run("WrapsModOrder", func(t *testing.T) {
		neg := ed25519.ScalarFromGroup(group.NewScalar().Negate(mustGroup(t, a)))
		assert.True(t, add(a, neg).IsZero())
	})

	t.Run("RejectsNonCanonical", func(t *testing.T) {
		_, err := AddScalars(a, ed25519.Scalar(group.Order()))
		assert.ErrorIs(t, err, ed25519.ErrNonCanonicalScalar)
	})

	t.Run("FoldOrderIndependent", func(t *testing.T) {
		cs := newCosigners(t, 4)
		keys := publicKeysOf(cs)
		message := []byte("any order")
		aggCommitment := commit(t, cs)

		partials := make([]PartialSignature, len(cs))
		for i, c := range cs {
			var err error
			partials[i], err = DelinearizedPartialSign(message, aggCommitment, c.nonce, keys, c.pub, c.seed)
			require.NoError(t, err)
		}

		forward, err := AggregatePartialSignatures(aggCommitment, partials)
		require.NoError(t, err)
		backward, err := AggregatePartialSignatures(aggCommitment, []PartialSignature{
			partials[3], partials[1], partials[0], partials[2],
		})
		require.NoError(t, err)
		assert.Equal(t, forward, backward)
	})
}

func mustGroup(t *testing.T, s ed25519.Scalar) *group.Scalar {
	t.Helper()
	g, err := s.Group()
	require.NoError(t, err)
	return g
}

func TestNonceReuseLeaksPrivateKey(t *testing.T) {
	cs := newCosigners(t, 2)
	keys := publicKeysOf(cs)
	hash := HashPublicKeys(keys)
	aggKey, err := AggregateDelinearizedPublicKeys(hash, keys)
	require.NoError(t, err)

	victim := cs[0]
	aggCommitment := commit(t, cs)

	m1 := []byte("first message")
	m2 := []byte("second message")
	s1, err := DelinearizedPartialSign(m1, aggCommitment, victim.nonce, keys, victim.pub, victim.seed)
	require.NoError(t, err)
	s2, err := DelinearizedPartialSign(m2, aggCommitment, victim.nonce, keys, victim.pub, victim.seed)
	require.NoError(t, err)

	// x = (s1 - s2) / (e1 - e2), computable by anyone who saw both shares
	e1 := ed25519.Challenge(aggCommitment, aggKey, m1)
	e2 := ed25519.Challenge(aggCommitment, aggKey, m2)
	de, err := group.NewScalar().Invert(group.NewScalar().Sub(e1, e2))
	require.NoError(t, err)
	ds := group.NewScalar().Sub(mustGroup(t, s1.Scalar()), mustGroup(t, s2.Scalar()))
	recovered := group.NewScalar().Mul(ds, de)

	want := DeriveDelinearizedPrivateKey(hash, victim.pub, victim.seed)
	assert.Equal(t, want[:], recovered.Bytes())
}

func TestPartialSignErrors(t *testing.T) {
	cs := newCosigners(t, 2)
	keys := publicKeysOf(cs)
	aggCommitment := commit(t, cs)
	message := []byte("errors")

	t.Run("NotCosigner", func(t *testing.T) {
		outsider := newCosigners(t, 1)[0]
		_, err := DelinearizedPartialSign(message, aggCommitment, cs[0].nonce, keys, outsider.pub, outsider.seed)
		assert.ErrorIs(t, err, ErrNotCosigner)
	})

	t.Run("KeyMismatch", func(t *testing.T) {
		_, err := DelinearizedPartialSign(message, aggCommitment, cs[0].nonce, keys, cs[0].pub, cs[1].seed)
		assert.ErrorIs(t, err, ErrKeyMismatch)
	})

	t.Run("NoCosigners", func(t *testing.T) {
		_, err := DelinearizedPartialSign(message, aggCommitment, cs[0].nonce, nil, cs[0].pub, cs[0].seed)
		assert.ErrorIs(t, err, ErrNoCosigners)

		_, err = AggregatePartialSignatures(aggCommitment, nil)
		assert.ErrorIs(t, err, ErrNoCosigners)
	})

	t.Run("NonCanonicalNonce", func(t *testing.T) {
		_, err := DelinearizedPartialSign(message, aggCommitment, Nonce(group.Order()), keys, cs[0].pub, cs[0].seed)
		assert.ErrorIs(t, err, ed25519.ErrNonCanonicalScalar)
	})

	t.Run("InvalidAggregateCommitment", func(t *testing.T) {
		var bad Commitment
		bad[0] = 2
		_, err := DelinearizedPartialSign(message, bad, cs[0].nonce, keys, cs[0].pub, cs[0].seed)
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)
	})

	t.Run("InvalidAggregateKey", func(t *testing.T) {
		hash := HashPublicKeys(keys)
		priv := DeriveDelinearizedPrivateKey(hash, cs[0].pub, cs[0].seed)

		offCurve := ed25519.PublicKey{2}
		_, err := PartialSignWithKey(message, aggCommitment, cs[0].nonce, offCurve, priv)
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)

		// point of order 2
		var smallOrder ed25519.PublicKey
		smallOrder[0] = 0xec
		for i := 1; i < 31; i++ {
			smallOrder[i] = 0xff
		}
		smallOrder[31] = 0x7f
		_, err = PartialSignWithKey(message, aggCommitment, cs[0].nonce, smallOrder, priv)
		assert.ErrorIs(t, err, ed25519.ErrInvalidPoint)

		aggKey, err := AggregateDelinearizedPublicKeys(hash, keys)
		require.NoError(t, err)
		want, err := DelinearizedPartialSign(message, aggCommitment, cs[0].nonce, keys, cs[0].pub, cs[0].seed)
		require.NoError(t, err)
		got, err := PartialSignWithKey(message, aggCommitment, cs[0].nonce, aggKey, priv)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestFlatBuffers(t *testing.T) {
	cs := newCosigners(t, 3)
	keys := publicKeysOf(cs)
	commit(t, cs)

	t.Run("PublicKeys", func(t *testing.T) {
		flat := JoinPublicKeys(keys)
		require.Len(t, flat, 96)

		parsed, err := SplitPublicKeys(flat, 3)
		require.NoError(t, err)
		assert.Equal(t, keys, parsed)
		assert.Equal(t, HashPublicKeys(keys), HashPublicKeys(parsed))
	})

	t.Run("Commitments", func(t *testing.T) {
		commitments := []Commitment{cs[0].commit, cs[1].commit, cs[2].commit}
		parsed, err := SplitCommitments(JoinCommitments(commitments), 3)
		require.NoError(t, err)
		assert.Equal(t, commitments, parsed)
	})

	t.Run("CountMismatch", func(t *testing.T) {
		flat := JoinPublicKeys(keys)

		_, err := SplitPublicKeys(flat, 2)
		assert.ErrorIs(t, err, ed25519.ErrInvalidLength)

		_, err = SplitCommitments(flat[:95], 3)
		assert.ErrorIs(t, err, ed25519.ErrInvalidLength)

		_, err = SplitPartialSignatures(flat, -1)
		assert.ErrorIs(t, err, ed25519.ErrInvalidLength)

		// count*32 wraps to zero
		huge := math.MaxInt/16 + 1
		assert.NotPanics(t, func() {
			_, err = SplitPublicKeys(nil, huge)
		})
		assert.ErrorIs(t, err, ed25519.ErrInvalidLength)

		_, err = SplitCommitments(flat[:32], huge+1)
		assert.ErrorIs(t, err, ed25519.ErrInvalidLength)
	})
}
