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
	"crypto"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/google/ecvrf/core/crypto/vrf"
)

const (
	privatePEMType = "ECVRF SECP256K1 PRIVATE KEY"
	publicPEMType  = "ECVRF SECP256K1 PUBLIC KEY"
)

var (
	// ErrNoPEMFound occurs when attempting to parse a non PEM data structure.
	ErrNoPEMFound = errors.New("no PEM block found")
	// ErrWrongKeyType occurs when a PEM block holds a different kind of key.
	ErrWrongKeyType = errors.New("not a secp256k1 VRF key")
)

// MarshalPrivatePEM encodes the secret scalar of kp as a PEM block.
func MarshalPrivatePEM(kp *KeyPair) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: privatePEMType, Bytes: kp.Secret()})
}

// MarshalPublicPEM encodes pk as a PEM block.
func MarshalPublicPEM(pk Point) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: publicPEMType, Bytes: pk.Marshal()})
}

// KeyPairFromPEM parses a private key written by MarshalPrivatePEM.
func KeyPairFromPEM(b []byte) (*KeyPair, error) {
	p, _ := pem.Decode(b)
	if p == nil {
		return nil, ErrNoPEMFound
	}
	if p.Type != privatePEMType {
		return nil, fmt.Errorf("PEM type %q: %w", p.Type, ErrWrongKeyType)
	}
	return NewKeyPair(p.Bytes)
}

// PublicKeyFromPEM parses a public key written by MarshalPublicPEM.
func PublicKeyFromPEM(b []byte) (Point, error) {
	p, _ := pem.Decode(b)
	if p == nil {
		return Point{}, ErrNoPEMFound
	}
	if p.Type != publicPEMType {
		return Point{}, fmt.Errorf("PEM type %q: %w", p.Type, ErrWrongKeyType)
	}
	pk, err := UnmarshalPoint(p.Bytes)
	if err != nil {
		return Point{}, err
	}
	if pk.IsInfinity() {
		return Point{}, ErrInvalidPoint
	}
	return pk, nil
}

// Signer adapts a KeyPair to vrf.PrivateKey.
type Signer struct {
	v  *ECVRF
	kp *KeyPair
}

// NewSigner returns a vrf.PrivateKey that proves with v under kp.
func NewSigner(v *ECVRF, kp *KeyPair) *Signer {
	return &Signer{v: v, kp: kp}
}

// Evaluate returns the encoded VRF output of m and its encoded proof.
func (s *Signer) Evaluate(m []byte) (output, proof []byte, err error) {
	r, err := s.v.Prove(m, s.kp)
	if err != nil {
		return nil, nil, err
	}
	pi, err := r.Proof.Marshal()
	if err != nil {
		return nil, nil, err
	}
	return r.Output.Marshal(), pi, nil
}

// Public returns the public key as a Point.
func (s *Signer) Public() crypto.PublicKey {
	return s.kp.Public()
}

// Verifier adapts a public key to vrf.PublicKey.
type Verifier struct {
	v  *ECVRF
	pk Point
}

// NewVerifier returns a vrf.PublicKey that checks proofs under pk.
func NewVerifier(v *ECVRF, pk Point) (*Verifier, error) {
	if pk.IsInfinity() {
		return nil, ErrInvalidPoint
	}
	return &Verifier{v: v, pk: pk}, nil
}

// Verify decodes output and proof and checks them against m.
func (pv *Verifier) Verify(m, output, proof []byte) bool {
	_, err := pv.ProofToHash(m, output, proof)
	return err == nil
}

// ProofToHash asserts that proof is correct for m and output, and returns
// the hash of the output.
func (pv *Verifier) ProofToHash(m, output, proof []byte) (index [HashLen]byte, err error) {
	y, err := UnmarshalPoint(output)
	if err != nil {
		return index, ErrInvalidProof
	}
	pi, err := UnmarshalProof(proof)
	if err != nil {
		return index, ErrInvalidProof
	}
	if !pv.v.Verify(m, y, pi, pv.pk) {
		return index, ErrInvalidProof
	}
	return pi.Hash(), nil
}

var (
	_ vrf.PrivateKey = (*Signer)(nil)
	_ vrf.PublicKey  = (*Verifier)(nil)
)
