// Package session provides a high-level API for N-of-N multisig signing
// ceremonies. It wraps the low-level primitives in the [multisig] package
// with a stateful interface that enforces the protocol barriers and
// prevents nonce reuse.
//
// The session package is designed for application developers who want to
// produce multisig signatures without tracking every protocol detail. For
// full control over the protocol, use the [multisig] package directly.
//
// # Setup
//
// Every cosigner builds a [Cosigner] from its own seed and the agreed,
// ordered list of all cosigner public keys:
//
//	c, err := session.NewCosigner(mySeed, publicKeys, session.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//
//	// c.AggregateKey() is the key signatures will verify under
//
// # Signing
//
// Signing uses a session-based API that ensures nonces are never reused:
//
//	// Create a signing session (generates the nonce internally)
//	sess, err := c.NewSigningSession(rand.Reader, message)
//	if err != nil {
//		return err
//	}
//
//	// Broadcast sess.CommitmentMessage() to the other cosigners
//	// Collect every cosigner's commitment, ordered by index
//	commitments, err := session.CollectCommitments(c.NumCosigners(), received)
//
//	// Commitment barrier
//	if _, err := sess.ReceiveCommitments(commitments); err != nil {
//		return err
//	}
//
//	// Produce the partial signature (consumes the session)
//	partial, err := sess.Sign()
//	if err != nil {
//		return err
//	}
//
//	// Broadcast sess.PartialSignatureMessage(), collect the others
//	sig, err := sess.Finalize(partials)
//
// A SigningSession moves through [StateCommitted], [StateAggregated],
// [StatePartiallySigned] and [StateComplete]. Calling a method out of
// order returns [ErrInvalidState]. Calling Sign a second time returns
// [ErrSessionConsumed]. If a cosigner drops out, call Abort and start
// over: there is no recovery from a partial set of cosigners.
//
// # Transport Agnostic
//
// This package does not handle network communication. You are responsible
// for distributing messages between cosigners using your preferred
// transport. [CommitmentMessage] and [PartialSignatureMessage] encode to
// CBOR for that purpose.
package session
