// Copyright 2020 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package k256

import (
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	// PointLen is the length of a compressed affine point encoding.
	PointLen = 33
	// ScalarLen is the length of an encoded scalar.
	ScalarLen = 32
)

var (
	curve  = secp256k1.S256()
	params = curve.Params()

	// infinityEncoding is the SEC1 encoding of the point at infinity.
	infinityEncoding = []byte{0x00}
)

// Point is an element of the secp256k1 group: either an affine point (x, y)
// or the point at infinity. The zero value is the point at infinity.
type Point struct {
	affine bool
	x, y   secp256k1.FieldVal
}

// Infinity returns the identity element.
func Infinity() Point { return Point{} }

// Generator returns the fixed base point G.
func Generator() Point {
	p, err := NewPoint(params.Gx, params.Gy)
	if err != nil {
		panic(err) // G is always on the curve.
	}
	return p
}

// NewPoint returns the affine point (x, y), or ErrInvalidPoint if it does not
// lie on the curve.
func NewPoint(x, y *big.Int) (Point, error) {
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(params.P) >= 0 || y.Cmp(params.P) >= 0 {
		return Point{}, ErrInvalidPoint
	}
	if !curve.IsOnCurve(x, y) {
		return Point{}, ErrInvalidPoint
	}
	p := Point{affine: true}
	setField(&p.x, x)
	setField(&p.y, y)
	return p, nil
}

// setField sets f to v, which must be in [0, p).
func setField(f *secp256k1.FieldVal, v *big.Int) {
	var b [32]byte
	v.FillBytes(b[:])
	f.SetBytes(&b)
	f.Normalize()
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool { return !p.affine }

// Coordinates returns the affine coordinates of p. ok is false for the point
// at infinity.
func (p Point) Coordinates() (x, y *big.Int, ok bool) {
	if !p.affine {
		return nil, nil, false
	}
	return new(big.Int).SetBytes(p.x.Bytes()[:]), new(big.Int).SetBytes(p.y.Bytes()[:]), true
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.affine != q.affine {
		return false
	}
	if !p.affine {
		return true
	}
	return p.x.Equals(&q.x) && p.y.Equals(&q.y)
}

// String returns the hex encoding of p.
func (p Point) String() string {
	return fmt.Sprintf("%x", p.Marshal())
}

// Marshal returns the canonical encoding of p: SEC1 compressed for affine
// points and the single byte 0x00 for the point at infinity.
func (p Point) Marshal() []byte {
	if !p.affine {
		return append([]byte(nil), infinityEncoding...)
	}
	return secp256k1.NewPublicKey(&p.x, &p.y).SerializeCompressed()
}

// UnmarshalPoint decodes the canonical encoding produced by Marshal.
func UnmarshalPoint(b []byte) (Point, error) {
	if len(b) == len(infinityEncoding) && b[0] == infinityEncoding[0] {
		return Point{}, nil
	}
	if len(b) != PointLen {
		return Point{}, fmt.Errorf("len(point): %v, want %v: %w", len(b), PointLen, ErrInvalidPoint)
	}
	pk, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return Point{}, fmt.Errorf("%v: %w", err, ErrInvalidPoint)
	}
	return NewPoint(pk.X(), pk.Y())
}

func (p Point) jacobian() secp256k1.JacobianPoint {
	if !p.affine {
		return secp256k1.JacobianPoint{}
	}
	var one secp256k1.FieldVal
	one.SetInt(1)
	return secp256k1.MakeJacobianPoint(&p.x, &p.y, &one)
}

func fromJacobian(j *secp256k1.JacobianPoint) Point {
	if (j.X.IsZero() && j.Y.IsZero()) || j.Z.IsZero() {
		return Point{}
	}
	j.ToAffine()
	return Point{affine: true, x: j.X, y: j.Y}
}

// Add returns p + q.
func Add(p, q Point) Point {
	switch {
	case p.IsInfinity():
		return q
	case q.IsInfinity():
		return p
	}
	pj, qj := p.jacobian(), q.jacobian()
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&pj, &qj, &r)
	return fromJacobian(&r)
}

// ScalarMult returns k*p.
func ScalarMult(p Point, k *secp256k1.ModNScalar) Point {
	if p.IsInfinity() || k.IsZero() {
		return Point{}
	}
	pj := p.jacobian()
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(k, &pj, &r)
	return fromJacobian(&r)
}

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *secp256k1.ModNScalar) Point {
	if k.IsZero() {
		return Point{}
	}
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(k, &r)
	return fromJacobian(&r)
}

// MarshalScalar returns the 32-byte big-endian encoding of s.
func MarshalScalar(s *secp256k1.ModNScalar) []byte {
	b := s.Bytes()
	return b[:]
}

// UnmarshalScalar decodes a 32-byte big-endian scalar, rejecting values that
// are not reduced modulo the group order.
func UnmarshalScalar(b []byte) (secp256k1.ModNScalar, error) {
	var s secp256k1.ModNScalar
	if len(b) != ScalarLen {
		return s, fmt.Errorf("len(scalar): %v, want %v: %w", len(b), ScalarLen, ErrInvalidScalar)
	}
	var buf [ScalarLen]byte
	copy(buf[:], b)
	if overflow := s.SetBytes(&buf); overflow != 0 {
		return secp256k1.ModNScalar{}, ErrInvalidScalar
	}
	return s, nil
}
