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
	"encoding/hex"
	"testing"
)

// Known answers computed with an independent Keccak-256 and secp256k1
// implementation. The nonce k is fed to Prove through WithRand.
const vectorNonce = "7ab1577440dd7bedf920cb6de2f9fc6bf7ba98c78c85a3fa1f8311aac95e1759"

func TestVectors(t *testing.T) {
	for _, tc := range []struct {
		desc  string
		sk    string
		suite []byte
		alpha string
		pk    string
		h     string
		ctr   uint32
		gamma string
		proof string
		hash  string
	}{
		{
			desc:  "sk=1",
			sk:    "0000000000000000000000000000000000000000000000000000000000000001",
			suite: DefaultSuite,
			alpha: "999",
			pk:    "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
			h:     "0260cb8c06446ad7ea79138acb188698fad7ab1346f57eef90dece31e0fe590d25",
			ctr:   1,
			gamma: "0260cb8c06446ad7ea79138acb188698fad7ab1346f57eef90dece31e0fe590d25",
			proof: "0260cb8c06446ad7ea79138acb188698fad7ab1346f57eef90dece31e0fe590d25" +
				"6752a7ec62a9693b70a68203b5bd1b366cc94aece766691bfd358a8ff5e03910" +
				"135eaf87de3412b2887a496a2d3ce1358af14ddaa51f3ade224d871ad37dde49",
			hash: "7a88c4caf8753da469ab6d9968c1ec92b8cf1a603ff56804fedade5030feaf0b",
		},
		{
			desc:  "sk=2",
			sk:    "0000000000000000000000000000000000000000000000000000000000000002",
			suite: DefaultSuite,
			alpha: "999",
			pk:    "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
			h:     "02a9eb7dfbd07afe9379b18cfdd561cebf532b6523d6fea346bbd30a638a46e2dc",
			ctr:   0,
			gamma: "03a1c4e649b4624ed8fdc30cbe05c2a945d8b736805e50e89f947c0524ef1634e2",
			proof: "03a1c4e649b4624ed8fdc30cbe05c2a945d8b736805e50e89f947c0524ef1634e2" +
				"d1f692afb7cd22ba1dfdd0341c737af8f366731e258d47ee9ace1475b2fa308b" +
				"d6c43214d1433679bd252b05aa130677864b6c589ffc5494698ba5d903d638c5",
			hash: "2d9711d715f2b44b515d77ca1b7cbcfdaa30eb9efb5d5179b20c0f826e723efc",
		},
		{
			desc:  "ASCII suite tag",
			sk:    "0000000000000000000000000000000000000000000000000000000000000001",
			suite: []byte("0x01"),
			alpha: "999",
			pk:    "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
			h:     "02772bc0cef8c0c35966e657bb2c1dbae6d508fcfdb1f48a984e79eb82a08f93ba",
			ctr:   2,
			gamma: "02772bc0cef8c0c35966e657bb2c1dbae6d508fcfdb1f48a984e79eb82a08f93ba",
			proof: "02772bc0cef8c0c35966e657bb2c1dbae6d508fcfdb1f48a984e79eb82a08f93ba" +
				"058e1a70b094c8e9fb84260ee297a8812776ffdfeb9dfea799e26c3a33e7009a" +
				"75233d039048b303fd9ca55f006253ead04398e7a0e7a55285a0a570957716bf",
			hash: "ac2a6c3207150dfcb3f74d862f89edf5d44f2741d03059dbfe0ff088c9393efe",
		},
		{
			desc:  "sample",
			sk:    "c9afa9d845ba75166b5c215767b1d6934e50c3db36e89b127b8a622b120f6721",
			suite: DefaultSuite,
			alpha: "sample",
			pk:    "032c8c31fc9f990c6b55e3865a184a4ce50e09481f2eaeb3e60ec1cea13a6ae645",
			h:     "02f1ffe88c247d2fc8765aeba4dfc2479cf5f41c61277d8bc2003174662abe2aa5",
			ctr:   0,
			gamma: "0231b0c0aca2e22c328c59b7363fe0ec4abd6d45f3bf76eee0ceea27bdb62af646",
			proof: "0231b0c0aca2e22c328c59b7363fe0ec4abd6d45f3bf76eee0ceea27bdb62af646" +
				"24e83ef343649eb2a76b0fa31223ae906f2ca523f9d94ab6402e7cd96991c566" +
				"9e213e1efdeb1aa67926a0b1e37d00fdfca15d6756c2119b126b55e03484e958",
			hash: "09d04a3bd8df304990f8bb85c6a2755aff490436edd9580bd5bc0702e4bd5bfa",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			kp, err := NewKeyPair(dh(t, tc.sk))
			if err != nil {
				t.Fatalf("NewKeyPair(): %v", err)
			}
			if got := kp.Public().String(); got != tc.pk {
				t.Errorf("pk: %v, want %v", got, tc.pk)
			}
			v := New(WithSuite(tc.suite), WithRand(bytes.NewReader(dh(t, vectorNonce))))
			alpha := []byte(tc.alpha)

			H, ctr, err := v.HashToCurveWithCounter(kp.Public(), alpha)
			if err != nil {
				t.Fatalf("HashToCurveWithCounter(): %v", err)
			}
			if got := H.String(); got != tc.h {
				t.Errorf("H: %v, want %v", got, tc.h)
			}
			if ctr != tc.ctr {
				t.Errorf("ctr: %v, want %v", ctr, tc.ctr)
			}

			r, err := v.Prove(alpha, kp)
			if err != nil {
				t.Fatalf("Prove(): %v", err)
			}
			if got := r.Output.String(); got != tc.gamma {
				t.Errorf("gamma: %v, want %v", got, tc.gamma)
			}
			if got := hex.EncodeToString(marshalProof(t, r.Proof)); got != tc.proof {
				t.Errorf("proof: %v, want %v", got, tc.proof)
			}
			if h := r.Proof.Hash(); hex.EncodeToString(h[:]) != tc.hash {
				t.Errorf("hash: %x, want %v", h, tc.hash)
			}
			if !v.Verify(alpha, r.Output, r.Proof, kp.Public()) {
				t.Errorf("Verify(): false, want true")
			}
		})
	}
}

func TestHashPointsVectors(t *testing.T) {
	G := Generator()
	G2 := Add(G, G)
	for _, tc := range []struct {
		desc   string
		points []Point
		want   string
	}{
		{desc: "G, 2G", points: []Point{G, G2}, want: "07e79f190cce27bd53fb769c898938f7ebdf60bef101246d508347a51e5f1125"},
		{desc: "G, 2G, O", points: []Point{G, G2, Infinity()}, want: "d2aafb80060c4e8acdbbc7f447d7b3a8db542192d29e4a6389e4937a24501a19"},
	} {
		if got := hex.EncodeToString(MarshalScalar(hashPoints(tc.points...))); got != tc.want {
			t.Errorf("hashPoints(%v): %v, want %v", tc.desc, got, tc.want)
		}
	}
}
