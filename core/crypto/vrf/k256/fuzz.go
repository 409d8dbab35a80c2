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

//go:build gofuzz
// +build gofuzz

package k256

// To run the fuzzer:
// $ go get -u github.com/dvyukov/go-fuzz/go-fuzz github.com/dvyukov/go-fuzz/go-fuzz-build
// $ cd core/crypto/vrf/k256
// $ go-fuzz-build
// $ go-fuzz -func FuzzVerify

var fuzzVRF = New()

// FuzzVerify returns 1 if the fuzzer should increase the priority of the
// input, -1 if the input must not be added to the corpus, and 0 otherwise.
func FuzzVerify(data []byte) int {
	if len(data) < ScalarLen+PointLen+ProofLen {
		return -1
	}
	kp, err := NewKeyPair(data[:ScalarLen])
	if err != nil {
		return -1
	}
	y, err := UnmarshalPoint(data[ScalarLen : ScalarLen+PointLen])
	if err != nil {
		return 0
	}
	pi, err := UnmarshalProof(data[ScalarLen+PointLen : ScalarLen+PointLen+ProofLen])
	if err != nil {
		return 0
	}
	alpha := data[ScalarLen+PointLen+ProofLen:]
	if fuzzVRF.Verify(alpha, y, pi, kp.Public()) {
		return 1
	}
	return 0
}

// FuzzProve checks that every proof produced verifies.
func FuzzProve(data []byte) int {
	if len(data) < ScalarLen {
		return -1
	}
	kp, err := NewKeyPair(data[:ScalarLen])
	if err != nil {
		return -1
	}
	alpha := data[ScalarLen:]
	r, err := fuzzVRF.Prove(alpha, kp)
	if err != nil {
		panic(err)
	}
	if !fuzzVRF.Verify(alpha, r.Output, r.Proof, r.PublicKey) {
		panic("proof does not verify")
	}
	return 1
}
