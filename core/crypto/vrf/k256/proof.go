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
	"bytes"
	"fmt"
)

// ProofLen is the length of an encoded proof: gamma || c || s.
const ProofLen = PointLen + 2*ScalarLen

// Marshal encodes pi as point_to_string(gamma) || c || s. Gamma must be
// finite: proofs from Prove always are, and the fixed-width encoding has no
// room for the one-byte point at infinity.
func (pi *Proof) Marshal() ([]byte, error) {
	if pi.Gamma.IsInfinity() {
		return nil, fmt.Errorf("gamma is the point at infinity: %w", ErrInvalidProof)
	}
	var b bytes.Buffer
	b.Grow(ProofLen)
	b.Write(pi.Gamma.Marshal())
	b.Write(MarshalScalar(&pi.C))
	b.Write(MarshalScalar(&pi.S))
	return b.Bytes(), nil
}

// UnmarshalProof decodes a proof produced by Marshal.
func UnmarshalProof(b []byte) (*Proof, error) {
	if got, want := len(b), ProofLen; got != want {
		return nil, fmt.Errorf("len(pi): %v, want %v: %w", got, want, ErrInvalidProof)
	}
	gamma, err := UnmarshalPoint(b[:PointLen])
	if err != nil {
		return nil, fmt.Errorf("gamma: %v: %w", err, ErrInvalidProof)
	}
	c, err := UnmarshalScalar(b[PointLen : PointLen+ScalarLen])
	if err != nil {
		return nil, fmt.Errorf("c: %v: %w", err, ErrInvalidProof)
	}
	s, err := UnmarshalScalar(b[PointLen+ScalarLen:])
	if err != nil {
		return nil, fmt.Errorf("s: %v: %w", err, ErrInvalidProof)
	}
	return &Proof{Gamma: gamma, C: c, S: s}, nil
}

// Hash returns Keccak-256(point_to_string(gamma)), the conventional VRF hash
// output. It should only be trusted for proofs that passed Verify.
func (pi *Proof) Hash() [HashLen]byte {
	var index [HashLen]byte
	h := newHash()
	h.Write(pi.Gamma.Marshal())
	copy(index[:], h.Sum(nil))
	return index
}

// ProofToHash decodes pi and returns its hash output without verifying it.
// Clients checking untrusted proofs must call Verify first.
func ProofToHash(pi []byte) ([HashLen]byte, error) {
	p, err := UnmarshalProof(pi)
	if err != nil {
		return [HashLen]byte{}, err
	}
	return p.Hash(), nil
}
