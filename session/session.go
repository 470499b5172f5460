package session

import (
	"errors"
	"fmt"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/multisig"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateKey is returned when a cosigner list contains the same
	// public key twice.
	ErrDuplicateKey = errors.New("session: duplicate public key")

	// ErrInvalidState is returned when a session method is called out of
	// protocol order.
	ErrInvalidState = errors.New("session: invalid state")

	// ErrSessionConsumed is returned when a session that already signed
	// or was aborted is asked to sign again.
	ErrSessionConsumed = errors.New("session already consumed: nonce reuse prevented")

	// ErrCount is returned when the number of commitments or partial
	// signatures does not match the number of cosigners.
	ErrCount = errors.New("session: wrong number of cosigner values")

	// ErrOwnValueMismatch is returned when the collected values do not
	// contain this cosigner's own value at its own index.
	ErrOwnValueMismatch = errors.New("session: own value not found at own index")

	// ErrVerification is returned when an aggregate signature does not
	// verify under the group's aggregate key.
	ErrVerification = errors.New("signature verification failed")
)

const defaultCommitmentAttempts = 8

type options struct {
	logger             *zap.Logger
	commitmentAttempts int
}

// Option configures a Cosigner.
type Option func(*options)

// WithLogger sets the logger used for session state transitions. Secret
// values are never logged. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCommitmentAttempts bounds how many times a session draws fresh
// randomness after a degenerate commitment.
func WithCommitmentAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.commitmentAttempts = n
		}
	}
}

// Cosigner is one party's long-lived view of a multisig group: its own
// key, the agreed ordered list of cosigner keys, and the values derived
// from them. Create instances using [NewCosigner]. A Cosigner is
// immutable and may start any number of signing sessions.
type Cosigner struct {
	publicKey    ed25519.PublicKey
	publicKeys   []ed25519.PublicKey
	index        int
	hash         multisig.PublicKeysHash
	aggregateKey ed25519.PublicKey
	privateKey   multisig.DelinearizedPrivateKey
	opts         options
}

// NewCosigner creates the cosigner for seed in the group formed by
// publicKeys, in the given order. Every cosigner must be created with the
// same list in the same order.
func NewCosigner(seed ed25519.Seed, publicKeys []ed25519.PublicKey, opts ...Option) (*Cosigner, error) {
	o := options{
		logger:             zap.NewNop(),
		commitmentAttempts: defaultCommitmentAttempts,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if len(publicKeys) == 0 {
		return nil, multisig.ErrNoCosigners
	}

	publicKey := ed25519.DerivePublicKey(seed)
	index := -1
	seen := make(map[ed25519.PublicKey]struct{}, len(publicKeys))
	for i, pk := range publicKeys {
		if _, dup := seen[pk]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, pk)
		}
		seen[pk] = struct{}{}
		if pk == publicKey {
			index = i
		}
	}
	if index < 0 {
		return nil, multisig.ErrNotCosigner
	}

	keys := make([]ed25519.PublicKey, len(publicKeys))
	copy(keys, publicKeys)

	hash := multisig.HashPublicKeys(keys)
	aggregateKey, err := multisig.AggregateDelinearizedPublicKeys(hash, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate public keys: %w", err)
	}

	c := &Cosigner{
		publicKey:    publicKey,
		publicKeys:   keys,
		index:        index,
		hash:         hash,
		aggregateKey: aggregateKey,
		privateKey:   multisig.DeriveDelinearizedPrivateKey(hash, publicKey, seed),
		opts:         o,
	}

	o.logger.Debug("cosigner created",
		zap.Int("index", index),
		zap.Int("cosigners", len(keys)),
		zap.Stringer("group", hash),
		zap.Stringer("aggregate_key", aggregateKey),
	)
	return c, nil
}

// Index returns this cosigner's position in the group order.
func (c *Cosigner) Index() int {
	return c.index
}

// PublicKey returns this cosigner's own public key.
func (c *Cosigner) PublicKey() ed25519.PublicKey {
	return c.publicKey
}

// PublicKeys returns a copy of the ordered cosigner keys.
func (c *Cosigner) PublicKeys() []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, len(c.publicKeys))
	copy(keys, c.publicKeys)
	return keys
}

// NumCosigners returns the size of the group.
func (c *Cosigner) NumCosigners() int {
	return len(c.publicKeys)
}

// PublicKeysHash returns the group identifier.
func (c *Cosigner) PublicKeysHash() multisig.PublicKeysHash {
	return c.hash
}

// AggregateKey returns the group's aggregate public key, the key under
// which finished signatures verify.
func (c *Cosigner) AggregateKey() ed25519.PublicKey {
	return c.aggregateKey
}
