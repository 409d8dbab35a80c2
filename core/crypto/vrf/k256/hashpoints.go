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
	"hash"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// HashLen is the size of the Keccak-256 digest.
const HashLen = 32

func newHash() hash.Hash { return sha3.NewLegacyKeccak256() }

// hashPoints is the Fiat-Shamir challenge: the Keccak-256 hash of the
// concatenated encodings of points, in order, reduced modulo the group order.
// Prover and verifier must pass the same points in the same order:
// G, H, pk, gamma, U, V.
func hashPoints(points ...Point) *secp256k1.ModNScalar {
	h := newHash()
	for _, p := range points {
		h.Write(p.Marshal())
	}
	var digest [HashLen]byte
	copy(digest[:], h.Sum(nil))

	// A 256-bit digest is less than 2n, so SetBytes reduces it modulo n
	// with at most one subtraction.
	c := new(secp256k1.ModNScalar)
	c.SetBytes(&digest)
	return c
}
