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

// Package k256 implements a verifiable random function over secp256k1.
//
// Discrete log based VRF in the style of Appendix A of CONIKS
// (http://www.jbonneau.com/doc/MBBFF15-coniks.pdf):
//
//	H     = HashToCurve(pk, alpha)
//	gamma = sk*H
//	c     = Hash(G, H, pk, gamma, k*G, k*H) mod n, k random
//	s     = k - c*sk mod n
//
// The verifier recomputes U = c*pk + s*G and V = c*gamma + s*H, which equal
// k*G and k*H for an honest proof, and checks that the challenge matches.
package k256

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/golang/glog"
	"github.com/google/trillian/monitoring"
)

// DefaultMaxAttempts bounds the try-and-increment loop of HashToCurve.
const DefaultMaxAttempts = 1 << 16

// DefaultSuite is the domain separation tag prepended to every hash to curve
// input.
var DefaultSuite = []byte{0x01}

var (
	// ErrHashToCurveExhausted occurs when no curve point was found within the
	// maximum number of hash to curve attempts.
	ErrHashToCurveExhausted = errors.New("hash to curve: attempts exhausted")
	// ErrInvalidPoint occurs when an encoding is not a point on secp256k1.
	ErrInvalidPoint = errors.New("invalid secp256k1 point")
	// ErrInvalidScalar occurs when an encoding is not a scalar in [0, n).
	ErrInvalidScalar = errors.New("invalid scalar")
	// ErrInvalidProof occurs when a proof cannot be decoded.
	ErrInvalidProof = errors.New("invalid VRF proof")
	// ErrInvalidKey occurs when a secret key is zero or not reduced mod n.
	ErrInvalidKey = errors.New("invalid VRF secret key")
)

// ECVRF evaluates and verifies the VRF. It holds only configuration and is
// safe for concurrent use. Create it with New: the zero value reads
// randomness from crypto/rand but has no suite tag and a hash to curve cap of
// zero, so every HashToCurve fails with ErrHashToCurveExhausted.
type ECVRF struct {
	suite       []byte
	maxAttempts uint32
	rand        io.Reader
}

// Option configures an ECVRF.
type Option func(*ECVRF)

// WithSuite sets the domain separation tag. Prover and verifier must agree.
func WithSuite(suite []byte) Option {
	return func(v *ECVRF) { v.suite = append([]byte(nil), suite...) }
}

// WithMaxAttempts sets the hash to curve attempt cap.
func WithMaxAttempts(n uint32) Option {
	return func(v *ECVRF) { v.maxAttempts = n }
}

// WithRand sets the source of randomness for keys and nonces.
// If r is nil, crypto/rand is used.
func WithRand(r io.Reader) Option {
	return func(v *ECVRF) {
		if r == nil {
			r = rand.Reader
		}
		v.rand = r
	}
}

// WithMetricFactory sets the factory used to create the package metrics.
// Metrics are created once per process; only the first factory takes effect.
func WithMetricFactory(mf monitoring.MetricFactory) Option {
	return func(*ECVRF) { once.Do(func() { createMetrics(mf) }) }
}

// New returns an ECVRF configured with opts.
func New(opts ...Option) *ECVRF {
	v := &ECVRF{
		suite:       append([]byte(nil), DefaultSuite...),
		maxAttempts: DefaultMaxAttempts,
		rand:        rand.Reader,
	}
	for _, opt := range opts {
		opt(v)
	}
	initMetrics()
	return v
}

// Suite returns the domain separation tag.
func (v *ECVRF) Suite() []byte { return append([]byte(nil), v.suite...) }

// KeyPair holds a secret scalar sk and the public key pk = sk*G.
type KeyPair struct {
	sk secp256k1.ModNScalar
	pk Point
}

// NewKeyPair derives a key pair from a 32-byte big-endian secret scalar.
func NewKeyPair(sk []byte) (*KeyPair, error) {
	s, err := UnmarshalScalar(sk)
	if err != nil || s.IsZero() {
		return nil, ErrInvalidKey
	}
	return newKeyPair(&s), nil
}

func newKeyPair(sk *secp256k1.ModNScalar) *KeyPair {
	return &KeyPair{sk: *sk, pk: ScalarBaseMult(sk)}
}

// Public returns the public key.
func (kp *KeyPair) Public() Point { return kp.pk }

// Secret returns the 32-byte encoding of the secret scalar.
func (kp *KeyPair) Secret() []byte { return MarshalScalar(&kp.sk) }

// GenerateKey draws a fresh secret key uniformly from [1, n-1].
func (v *ECVRF) GenerateKey() (*KeyPair, error) {
	for {
		sk, err := v.randScalar()
		if err != nil {
			return nil, err
		}
		// sk = 0 would give pk = infinity, for which proofs are trivial.
		if !sk.IsZero() {
			return newKeyPair(sk), nil
		}
	}
}

// randScalar draws a scalar uniformly from [0, n-1] by rejection sampling.
func (v *ECVRF) randScalar() (*secp256k1.ModNScalar, error) {
	r := v.rand
	if r == nil {
		r = rand.Reader
	}
	var b [ScalarLen]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			glog.Warningf("reading randomness: %v", err)
			return nil, fmt.Errorf("reading randomness: %v", err)
		}
		k := new(secp256k1.ModNScalar)
		if overflow := k.SetBytes(&b); overflow == 0 {
			return k, nil
		}
	}
}

// Proof is a VRF proof: the pre-output gamma together with the Fiat-Shamir
// challenge c and response s.
type Proof struct {
	Gamma Point
	C, S  secp256k1.ModNScalar
}

// Result is the output of Prove.
type Result struct {
	// Output is gamma itself, identical across calls for a fixed key and input.
	Output    Point
	Proof     *Proof
	PublicKey Point
}

// Prove evaluates the VRF at alpha under kp and proves the output correct.
// The output is deterministic in (kp, alpha); the proof is not, since it
// depends on a fresh nonce.
func (v *ECVRF) Prove(alpha []byte, kp *KeyPair) (*Result, error) {
	G := Generator()

	// 1. H = HashToCurve(pk, alpha)
	H, err := v.HashToCurve(kp.pk, alpha)
	if err != nil {
		return nil, err
	}

	// 2. gamma = sk*H
	gamma := ScalarMult(H, &kp.sk)

	// 3. k <- [0, n-1]. k must never be reused across proofs.
	k, err := v.randScalar()
	if err != nil {
		return nil, err
	}

	// 4. c = Hash(G, H, pk, gamma, k*G, k*H)
	c := hashPoints(G, H, kp.pk, gamma, ScalarBaseMult(k), ScalarMult(H, k))

	// 5. s = k - c*sk mod n
	s := new(secp256k1.ModNScalar).Mul2(c, &kp.sk).Negate().Add(k)

	initMetrics()
	proofCount.Inc()
	return &Result{
		Output:    gamma,
		Proof:     &Proof{Gamma: gamma, C: *c, S: *s},
		PublicKey: kp.pk,
	}, nil
}

// Verify reports whether pi proves that y is the VRF output of alpha under
// pk. It never returns the reason for a rejection.
func (v *ECVRF) Verify(alpha []byte, y Point, pi *Proof, pk Point) bool {
	initMetrics()
	valid := v.verify(alpha, y, pi, pk)
	verifyCount.Inc(verifyResult(valid))
	return valid
}

func (v *ECVRF) verify(alpha []byte, y Point, pi *Proof, pk Point) bool {
	if pi == nil || pk.IsInfinity() {
		return false
	}
	G := Generator()

	// 1. U = c*pk + s*G
	U := Add(ScalarMult(pk, &pi.C), ScalarBaseMult(&pi.S))

	// 2. H = HashToCurve(pk, alpha)
	H, err := v.HashToCurve(pk, alpha)
	if err != nil {
		glog.V(2).Infof("Verify: %v", err)
		return false
	}

	// 3. V = c*gamma + s*H
	V := Add(ScalarMult(pi.Gamma, &pi.C), ScalarMult(H, &pi.S))

	// 4. c' = Hash(G, H, pk, gamma, U, V)
	c2 := hashPoints(G, H, pk, pi.Gamma, U, V)

	// 5. Accept iff c = c' and y = gamma.
	return c2.Equals(&pi.C) && y.Equal(pi.Gamma)
}
