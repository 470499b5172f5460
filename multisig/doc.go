// Package multisig implements N-of-N Ed25519 multi-signatures with
// delinearized key aggregation.
//
// N cosigners, each holding an ordinary Ed25519 seed, jointly produce one
// 64-byte signature that verifies with [ed25519.Verify] under a single
// aggregate public key. No cosigner learns another's private key, and the
// aggregate private key is never formed.
//
// # Key aggregation
//
// All cosigners agree on one ordered list of public keys. The order is
// part of the group's identity: the same keys in a different order form a
// different group with a different aggregate key.
//
//	hash := multisig.HashPublicKeys(publicKeys)
//	aggKey, err := multisig.AggregateDelinearizedPublicKeys(hash, publicKeys)
//
// Each key P_i is weighted by a_i = H(hash ‖ P_i) before summing. Because
// a_i depends on the whole set, a participant cannot pick its own key as
// a function of the others to cancel them out (rogue-key attack).
//
// # Signing
//
// Signing takes two rounds with a barrier after each:
//
//  1. Each cosigner calls [CreateCommitment] with 32 fresh random bytes
//     and publishes the commitment R_i, keeping the nonce secret.
//  2. Once every R_i is collected, each cosigner computes
//     R = [AggregateCommitments] and its share with
//     [DelinearizedPartialSign].
//  3. Once every share is collected, [AggregatePartialSignatures] folds
//     them into the final signature.
//
// # Caller responsibilities
//
// The functions in this package are pure and guarantee arithmetic
// correctness only. They cannot detect protocol sequencing mistakes:
// signing against an incomplete or stale commitment set, or with a key
// ordering that differs between cosigners, produces a well-formed share
// whose aggregate fails verification.
//
// CreateCommitment never reads entropy on its own and cannot tell whether
// the randomness it is given is fresh. Reusing a nonce for two different
// messages reveals the cosigner's delinearized private key. The session
// package wraps these functions in a single-use state machine that
// enforces both barriers and discards nonces after use.
package multisig
