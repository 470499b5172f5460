package group

import (
	"crypto/sha512"
	"errors"
	"fmt"
	"io"

	"filippo.io/edwards25519"
)

const (
	// ScalarSize is the size of an encoded scalar.
	ScalarSize = 32
	// PointSize is the size of a compressed point.
	PointSize = 32
	// WideScalarSize is the input size of a uniform reduction, such as a
	// SHA-512 digest.
	WideScalarSize = 64
)

var (
	// ErrInvalidEncoding is returned when bytes do not decode to a
	// scalar or point.
	ErrInvalidEncoding = errors.New("group: invalid encoding")

	// ErrZeroInverse is returned when inverting the zero scalar.
	ErrZeroInverse = errors.New("group: cannot invert zero scalar")
)

// order is L = 2^252 + 27742317777372353535851937790883648493, little-endian.
var order = [ScalarSize]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// Scalar is an integer modulo the group order L. The zero value is a
// valid zero scalar.
type Scalar struct {
	inner edwards25519.Scalar
}

// NewScalar returns a new zero scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Add sets s to a + b (mod L) and returns s.
func (s *Scalar) Add(a, b *Scalar) *Scalar {
	s.inner.Add(&a.inner, &b.inner)
	return s
}

// Sub sets s to a - b (mod L) and returns s.
func (s *Scalar) Sub(a, b *Scalar) *Scalar {
	s.inner.Subtract(&a.inner, &b.inner)
	return s
}

// Mul sets s to a * b (mod L) and returns s.
func (s *Scalar) Mul(a, b *Scalar) *Scalar {
	s.inner.Multiply(&a.inner, &b.inner)
	return s
}

// MulAdd sets s to x * y + z (mod L) and returns s.
func (s *Scalar) MulAdd(x, y, z *Scalar) *Scalar {
	s.inner.MultiplyAdd(&x.inner, &y.inner, &z.inner)
	return s
}

// Negate sets s to -a (mod L) and returns s.
func (s *Scalar) Negate(a *Scalar) *Scalar {
	s.inner.Negate(&a.inner)
	return s
}

// Invert sets s to a^(-1) (mod L) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a *Scalar) (*Scalar, error) {
	if a.IsZero() {
		return nil, ErrZeroInverse
	}
	s.inner.Invert(&a.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a *Scalar) *Scalar {
	s.inner.Set(&a.inner)
	return s
}

// Bytes returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetCanonicalBytes sets s from a 32-byte little-endian encoding and
// returns s. It fails if the length is wrong or the value is not
// strictly less than L.
func (s *Scalar) SetCanonicalBytes(data []byte) (*Scalar, error) {
	if len(data) != ScalarSize {
		return nil, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrInvalidEncoding, ScalarSize, len(data))
	}
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("%w: non-canonical scalar", ErrInvalidEncoding)
	}
	return s, nil
}

// SetReducedBytes interprets data as a little-endian integer of 32 or 64
// bytes, reduces it modulo L, and stores it in s.
func (s *Scalar) SetReducedBytes(data []byte) (*Scalar, error) {
	var wide [WideScalarSize]byte
	switch len(data) {
	case ScalarSize, WideScalarSize:
		copy(wide[:], data)
	default:
		return nil, fmt.Errorf("%w: cannot reduce %d bytes", ErrInvalidEncoding, len(data))
	}
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b *Scalar) bool {
	return s.inner.Equal(&b.inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(edwards25519.NewScalar()) == 1
}

// Point is an element of the edwards25519 group. Use [NewPoint] or
// [Generator] to obtain one; the zero value is not a valid point.
type Point struct {
	inner edwards25519.Point
}

// NewPoint returns a new point set to the identity element.
func NewPoint() *Point {
	p := &Point{}
	p.inner.Set(edwards25519.NewIdentityPoint())
	return p
}

// Generator returns the standard Ed25519 base point B.
func Generator() *Point {
	p := &Point{}
	p.inner.Set(edwards25519.NewGeneratorPoint())
	return p
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	p.inner.Add(&a.inner, &b.inner)
	return p
}

// Sub sets p to a - b and returns p.
func (p *Point) Sub(a, b *Point) *Point {
	p.inner.Subtract(&a.inner, &b.inner)
	return p
}

// Negate sets p to -a and returns p.
func (p *Point) Negate(a *Point) *Point {
	p.inner.Negate(&a.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s *Scalar, q *Point) *Point {
	p.inner.ScalarMult(&s.inner, &q.inner)
	return p
}

// ScalarBaseMult sets p to s * B and returns p.
func (p *Point) ScalarBaseMult(s *Scalar) *Point {
	p.inner.ScalarBaseMult(&s.inner)
	return p
}

// VarTimeDoubleScalarBaseMult sets p to a * A + b * B and returns p.
// It runs in variable time and must only be used with public inputs.
func (p *Point) VarTimeDoubleScalarBaseMult(a *Scalar, A *Point, b *Scalar) *Point {
	p.inner.VarTimeDoubleScalarBaseMult(&a.inner, &A.inner, &b.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a *Point) *Point {
	p.inner.Set(&a.inner)
	return p
}

// Bytes returns the 32-byte compressed encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a 32-byte compressed encoding and returns p.
// Returns an error if the data does not represent a point on the curve.
func (p *Point) SetBytes(data []byte) (*Point, error) {
	if len(data) != PointSize {
		return nil, fmt.Errorf("%w: point must be %d bytes, got %d", ErrInvalidEncoding, PointSize, len(data))
	}
	if _, err := p.inner.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: point is not on the curve", ErrInvalidEncoding)
	}
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *Point) Equal(b *Point) bool {
	return p.inner.Equal(&b.inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(edwards25519.NewIdentityPoint()) == 1
}

// IsSmallOrder reports whether p lies in the torsion subgroup of order 8,
// which includes the identity.
func (p *Point) IsSmallOrder() bool {
	var cleared edwards25519.Point
	cleared.MultByCofactor(&p.inner)
	return cleared.Equal(edwards25519.NewIdentityPoint()) == 1
}

// RandomScalar reads 64 bytes from r and returns them reduced modulo L,
// which makes the result statistically uniform.
func RandomScalar(r io.Reader) (*Scalar, error) {
	var buf [WideScalarSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return NewScalar().SetReducedBytes(buf[:])
}

// HashToScalar hashes the concatenation of data with SHA-512 and reduces
// the 64-byte digest modulo L.
func HashToScalar(data ...[]byte) *Scalar {
	h := sha512.New()
	for _, d := range data {
		h.Write(d)
	}
	digest := h.Sum(nil)

	s := NewScalar()
	// a 64-byte input always reduces
	_, _ = s.SetReducedBytes(digest)
	return s
}

// Order returns the group order L as 32 little-endian bytes.
func Order() []byte {
	out := make([]byte, ScalarSize)
	copy(out, order[:])
	return out
}
