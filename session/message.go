package session

import (
	"errors"
	"fmt"

	"github.com/f3rmion/edmultisig/ed25519"
	"github.com/f3rmion/edmultisig/multisig"
	"github.com/fxamacker/cbor/v2"
)

// ErrInvalidMessage is returned when a wire message cannot be decoded or
// does not fit the group.
var ErrInvalidMessage = errors.New("session: invalid message")

// CommitmentMessage is the round-one broadcast of one cosigner.
type CommitmentMessage struct {
	From       int
	Commitment multisig.Commitment
}

// PartialSignatureMessage is the round-two broadcast of one cosigner.
type PartialSignatureMessage struct {
	From             int
	PartialSignature multisig.PartialSignature
}

// wireMessage is the CBOR layout shared by both message kinds. Values are
// byte strings so that a short or long payload is rejected instead of
// being padded or truncated into a fixed-size array.
type wireMessage struct {
	From  int    `cbor:"1,keyasint"`
	Value []byte `cbor:"2,keyasint"`
}

func marshalWire(from int, value []byte) ([]byte, error) {
	return cbor.Marshal(wireMessage{From: from, Value: value})
}

func unmarshalWire(data []byte) (int, [32]byte, error) {
	var w wireMessage
	if err := cbor.Unmarshal(data, &w); err != nil {
		return 0, [32]byte{}, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	if w.From < 0 {
		return 0, [32]byte{}, fmt.Errorf("%w: negative sender index %d", ErrInvalidMessage, w.From)
	}
	if len(w.Value) != 32 {
		return 0, [32]byte{}, fmt.Errorf("%w: value is %d bytes: %w", ErrInvalidMessage, len(w.Value), ed25519.ErrInvalidLength)
	}
	var v [32]byte
	copy(v[:], w.Value)
	return w.From, v, nil
}

// Marshal encodes m as CBOR.
func (m *CommitmentMessage) Marshal() ([]byte, error) {
	return marshalWire(m.From, m.Commitment[:])
}

// Unmarshal decodes data produced by Marshal into m.
func (m *CommitmentMessage) Unmarshal(data []byte) error {
	from, v, err := unmarshalWire(data)
	if err != nil {
		return err
	}
	m.From, m.Commitment = from, v
	return nil
}

// Marshal encodes m as CBOR.
func (m *PartialSignatureMessage) Marshal() ([]byte, error) {
	return marshalWire(m.From, m.PartialSignature[:])
}

// Unmarshal decodes data produced by Marshal into m.
func (m *PartialSignatureMessage) Unmarshal(data []byte) error {
	from, v, err := unmarshalWire(data)
	if err != nil {
		return err
	}
	m.From, m.PartialSignature = from, v
	return nil
}

// collect places each value at its sender's index and requires exactly
// one value from every cosigner.
func collect[T any](n int, from func(int) (int, bool), value func(int) T, count int) ([]T, error) {
	if count != n {
		return nil, fmt.Errorf("%w: got %d messages for %d cosigners", ErrCount, count, n)
	}
	out := make([]T, n)
	seen := make([]bool, n)
	for i := 0; i < count; i++ {
		idx, ok := from(i)
		if !ok {
			return nil, fmt.Errorf("%w: message %d is nil", ErrInvalidMessage, i)
		}
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("%w: sender index %d out of range", ErrInvalidMessage, idx)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate message from %d", ErrInvalidMessage, idx)
		}
		seen[idx] = true
		out[idx] = value(i)
	}
	return out, nil
}

// CollectCommitments orders the round-one messages of n cosigners by
// sender index, ready for ReceiveCommitments.
func CollectCommitments(n int, msgs []*CommitmentMessage) ([]multisig.Commitment, error) {
	return collect(n,
		func(i int) (int, bool) {
			if msgs[i] == nil {
				return 0, false
			}
			return msgs[i].From, true
		},
		func(i int) multisig.Commitment { return msgs[i].Commitment },
		len(msgs),
	)
}

// CollectPartialSignatures orders the round-two messages of n cosigners
// by sender index, ready for Finalize or Aggregate.
func CollectPartialSignatures(n int, msgs []*PartialSignatureMessage) ([]multisig.PartialSignature, error) {
	return collect(n,
		func(i int) (int, bool) {
			if msgs[i] == nil {
				return 0, false
			}
			return msgs[i].From, true
		},
		func(i int) multisig.PartialSignature { return msgs[i].PartialSignature },
		len(msgs),
	)
}
