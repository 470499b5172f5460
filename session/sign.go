package session

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/multisig"
	"go.uber.org/zap"
)

// State is the protocol phase of a SigningSession.
type State int

const (
	// StateIdle is the phase before a commitment exists. Sessions
	// returned by NewSigningSession have already left it.
	StateIdle State = iota
	// StateCommitted means the commitment is ready to broadcast.
	StateCommitted
	// StateAggregated means every commitment was received and summed.
	StateAggregated
	// StatePartiallySigned means the partial signature was produced and
	// the nonce destroyed.
	StatePartiallySigned
	// StateComplete means the aggregate signature was assembled and
	// verified.
	StateComplete
	// StateAborted means the session was abandoned and its nonce
	// destroyed. A new session must be started.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCommitted:
		return "committed"
	case StateAggregated:
		return "aggregated"
	case StatePartiallySigned:
		return "partially-signed"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SigningSession manages a single signing operation with built-in nonce
// safety. It enforces the protocol barriers: the partial signature cannot
// be produced before every cosigner's commitment was received, and the
// nonce is used at most once.
//
// Create sessions using [Cosigner.NewSigningSession].
type SigningSession struct {
	mu       sync.Mutex
	cosigner *Cosigner
	logger   *zap.Logger
	message  []byte

	nonce               *multisig.Nonce
	commitment          multisig.Commitment
	aggregateCommitment multisig.Commitment
	partial             multisig.PartialSignature
	signature           ed25519.Signature

	state    State
	consumed bool
}

// NewSigningSession creates a new signing session for the given message.
//
// This draws 32 bytes of randomness from rng for the nonce. A degenerate
// draw is retried with fresh randomness a bounded number of times. The
// session must be used exactly once.
func (c *Cosigner) NewSigningSession(rng io.Reader, message []byte) (*SigningSession, error) {
	logger := c.opts.logger.With(zap.Int("index", c.index))

	var (
		nonce      multisig.Nonce
		commitment multisig.Commitment
		randomness [multisig.RandomnessSize]byte
		err        error
	)
	for attempt := 1; ; attempt++ {
		if _, err = io.ReadFull(rng, randomness[:]); err != nil {
			return nil, fmt.Errorf("failed to read randomness: %w", err)
		}
		nonce, commitment, err = multisig.CreateCommitment(randomness)
		randomness = [multisig.RandomnessSize]byte{}
		if err == nil {
			break
		}
		if !errors.Is(err, multisig.ErrDegenerateCommitment) || attempt >= c.opts.commitmentAttempts {
			return nil, err
		}
		logger.Warn("degenerate commitment, retrying", zap.Int("attempt", attempt))
	}

	// Copy message to prevent external modification
	msgCopy := make([]byte, len(message))
	copy(msgCopy, message)

	s := &SigningSession{
		cosigner:   c,
		logger:     logger,
		message:    msgCopy,
		nonce:      &nonce,
		commitment: commitment,
	}
	s.transition(StateCommitted)
	return s, nil
}

func (s *SigningSession) transition(next State) {
	s.logger.Debug("session state", zap.Stringer("from", s.state), zap.Stringer("to", next))
	s.state = next
}

// Commitment returns the public commitment that must be broadcast to the
// other cosigners.
func (s *SigningSession) Commitment() multisig.Commitment {
	return s.commitment
}

// CommitmentMessage wraps the commitment for transport.
func (s *SigningSession) CommitmentMessage() *CommitmentMessage {
	return &CommitmentMessage{From: s.cosigner.index, Commitment: s.commitment}
}

// Index returns the cosigner's position in the group order.
func (s *SigningSession) Index() int {
	return s.cosigner.index
}

// Message returns a copy of the message being signed.
func (s *SigningSession) Message() []byte {
	return bytes.Clone(s.message)
}

// State returns the current protocol phase.
func (s *SigningSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AggregateCommitment returns the sum of all commitments. It is only
// meaningful once ReceiveCommitments has succeeded.
func (s *SigningSession) AggregateCommitment() multisig.Commitment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aggregateCommitment
}

// ReceiveCommitments is the commitment barrier. all must hold exactly one
// commitment per cosigner, in group order, with this session's own
// commitment at its own index. On success the session moves to
// StateAggregated and the aggregate commitment is returned.
func (s *SigningSession) ReceiveCommitments(all []multisig.Commitment) (multisig.Commitment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateCommitted {
		return multisig.Commitment{}, fmt.Errorf("%w: cannot receive commitments in state %s", ErrInvalidState, s.state)
	}
	if n := s.cosigner.NumCosigners(); len(all) != n {
		return multisig.Commitment{}, fmt.Errorf("%w: got %d commitments for %d cosigners", ErrCount, len(all), n)
	}
	for i, c := range all {
		if (i == s.cosigner.index) != (c == s.commitment) {
			return multisig.Commitment{}, fmt.Errorf("%w: commitment %d", ErrOwnValueMismatch, i)
		}
	}

	agg, err := multisig.AggregateCommitments(all)
	if err != nil {
		return multisig.Commitment{}, err
	}

	s.aggregateCommitment = agg
	s.logger.Debug("commitments aggregated", zap.Stringer("aggregate_commitment", agg))
	s.transition(StateAggregated)
	return agg, nil
}

// Sign produces this cosigner's partial signature.
//
// This method consumes the session. Calling Sign a second time returns
// ErrSessionConsumed to prevent nonce reuse, which would reveal the
// cosigner's private key. After Sign returns, successfully or not, the
// nonce is zeroed.
func (s *SigningSession) Sign() (multisig.PartialSignature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.consumed {
		return multisig.PartialSignature{}, ErrSessionConsumed
	}
	if s.state != StateAggregated {
		return multisig.PartialSignature{}, fmt.Errorf("%w: cannot sign in state %s", ErrInvalidState, s.state)
	}

	// Mark as consumed before any operation that might fail
	s.consumed = true
	defer s.zeroNonce()

	c := s.cosigner
	partial, err := multisig.PartialSignWithKey(s.message, s.aggregateCommitment, *s.nonce, c.aggregateKey, c.privateKey)
	if err != nil {
		s.transition(StateAborted)
		return multisig.PartialSignature{}, err
	}

	s.partial = partial
	s.transition(StatePartiallySigned)
	return partial, nil
}

// PartialSignatureMessage wraps the partial signature for transport. It
// is only meaningful once Sign has succeeded.
func (s *SigningSession) PartialSignatureMessage() *PartialSignatureMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &PartialSignatureMessage{From: s.cosigner.index, PartialSignature: s.partial}
}

// Finalize is the partial signature barrier. partials must hold exactly
// one partial signature per cosigner, in group order, with this session's
// own partial signature at its own index. The assembled signature is
// verified under the aggregate key before it is returned.
func (s *SigningSession) Finalize(partials []multisig.PartialSignature) (ed25519.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateComplete {
		return s.signature, nil
	}
	if s.state != StatePartiallySigned {
		return ed25519.Signature{}, fmt.Errorf("%w: cannot finalize in state %s", ErrInvalidState, s.state)
	}
	if n := s.cosigner.NumCosigners(); len(partials) != n {
		return ed25519.Signature{}, fmt.Errorf("%w: got %d partial signatures for %d cosigners", ErrCount, len(partials), n)
	}
	if partials[s.cosigner.index] != s.partial {
		return ed25519.Signature{}, fmt.Errorf("%w: partial signature %d", ErrOwnValueMismatch, s.cosigner.index)
	}

	sig, err := Aggregate(s.aggregateCommitment, partials, len(partials))
	if err != nil {
		return ed25519.Signature{}, err
	}
	if err := Verify(s.message, sig, s.cosigner.aggregateKey); err != nil {
		return ed25519.Signature{}, err
	}

	s.signature = sig
	s.transition(StateComplete)
	return sig, nil
}

// Abort abandons the session and destroys its nonce. Use it when a
// cosigner drops out; the group must start over with new sessions.
func (s *SigningSession) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateComplete || s.state == StateAborted {
		return
	}
	s.consumed = true
	s.zeroNonce()
	s.transition(StateAborted)
}

// zeroNonce overwrites the secret nonce and drops the reference.
func (s *SigningSession) zeroNonce() {
	if s.nonce == nil {
		return
	}
	*s.nonce = multisig.Nonce{}
	s.nonce = nil
}

// IsConsumed returns true if this session has already been used for
// signing or was aborted.
func (s *SigningSession) IsConsumed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.consumed
}

// Aggregate combines partial signatures into a final signature.
//
// This is typically called by a coordinator after collecting the partial
// signatures of all numCosigners cosigners. A partial set produces a
// well-formed signature that does not verify, so the count is enforced.
func Aggregate(
	aggregateCommitment multisig.Commitment,
	partials []multisig.PartialSignature,
	numCosigners int,
) (ed25519.Signature, error) {
	if len(partials) == 0 {
		return ed25519.Signature{}, errors.New("no partial signatures provided")
	}
	if len(partials) != numCosigners {
		return ed25519.Signature{}, fmt.Errorf("%w: got %d partial signatures for %d cosigners", ErrCount, len(partials), numCosigners)
	}

	return multisig.AggregatePartialSignatures(aggregateCommitment, partials)
}

// Verify checks whether a signature is valid for the given message and
// aggregate key.
//
// Returns nil if the signature is valid, or ErrVerification otherwise.
func Verify(message []byte, sig ed25519.Signature, aggregateKey ed25519.PublicKey) error {
	if !ed25519.Verify(sig, message, aggregateKey) {
		return ErrVerification
	}
	return nil
}

// QuickSign performs a complete signing operation when all seeds are local.
//
// This is useful for testing or single-machine setups where every cosigner
// is in the same process. For distributed signing, use [SigningSession]
// instead. The cosigner order is the order of seeds. QuickSign returns the
// signature and the aggregate key it verifies under.
func QuickSign(rng io.Reader, seeds []ed25519.Seed, message []byte) (ed25519.Signature, ed25519.PublicKey, error) {
	if len(seeds) == 0 {
		return ed25519.Signature{}, ed25519.PublicKey{}, multisig.ErrNoCosigners
	}

	publicKeys := make([]ed25519.PublicKey, len(seeds))
	for i, seed := range seeds {
		publicKeys[i] = ed25519.DerivePublicKey(seed)
	}

	// Round 1: create sessions and collect commitments
	sessions := make([]*SigningSession, len(seeds))
	commitments := make([]multisig.Commitment, len(seeds))
	for i, seed := range seeds {
		c, err := NewCosigner(seed, publicKeys)
		if err != nil {
			return ed25519.Signature{}, ed25519.PublicKey{}, err
		}
		sess, err := c.NewSigningSession(rng, message)
		if err != nil {
			return ed25519.Signature{}, ed25519.PublicKey{}, err
		}
		sessions[i] = sess
		commitments[i] = sess.Commitment()
	}

	// Round 2: partial signatures
	partials := make([]multisig.PartialSignature, len(seeds))
	for i, sess := range sessions {
		if _, err := sess.ReceiveCommitments(commitments); err != nil {
			return ed25519.Signature{}, ed25519.PublicKey{}, err
		}
		partial, err := sess.Sign()
		if err != nil {
			return ed25519.Signature{}, ed25519.PublicKey{}, err
		}
		partials[i] = partial
	}

	sig, err := sessions[0].Finalize(partials)
	if err != nil {
		return ed25519.Signature{}, ed25519.PublicKey{}, err
	}
	return sig, sessions[0].cosigner.aggregateKey, nil
}
