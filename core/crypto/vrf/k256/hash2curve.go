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
	"encoding/binary"
	"math/big"

	"github.com/golang/glog"
)

var (
	one = big.NewInt(1)
	// a and b are the coefficients of y² = x³ + ax + b.
	curveA = big.NewInt(0)
	curveB = big.NewInt(7)
	// eulerExp is (p-1)/2 and sqrtExp is (p+1)/4. p = 3 mod 4 on secp256k1,
	// so t^((p+1)/4) is a square root of any quadratic residue t.
	eulerExp = new(big.Int).Rsh(new(big.Int).Sub(params.P, one), 1)
	sqrtExp  = new(big.Int).Rsh(new(big.Int).Add(params.P, one), 2)
	pMinus1  = new(big.Int).Sub(params.P, one)
)

const (
	hashToCurveMarker     = 0x01
	hashToCurveTerminator = 0x00
)

// HashToCurve deterministically maps pk and alpha to a point on the curve
// other than the point at infinity.
func (v *ECVRF) HashToCurve(pk Point, alpha []byte) (Point, error) {
	h, _, err := v.HashToCurveWithCounter(pk, alpha)
	return h, err
}

// HashToCurveWithCounter implements hash_to_curve_try_and_increment and also
// returns the counter value that produced the point.
//
// The running time of this algorithm depends on alpha. Each attempt succeeds
// with probability close to 1/2, so the expected number of attempts is about
// two. The loop is capped at the configured maximum number of attempts and
// returns ErrHashToCurveExhausted when the cap is reached.
//
// Inputs:
// - pk - public key, an EC point
// - alpha - value to be hashed, an octet string
// Output:
// - H - hashed value, a finite EC point
// - ctr - the counter value of the successful attempt
func (v *ECVRF) HashToCurveWithCounter(pk Point, alpha []byte) (Point, uint32, error) {
	pkString := pk.Marshal()
	h := newHash()
	var ctrString [4]byte
	for ctr := uint32(0); ctr < v.maxAttempts; ctr++ {
		binary.BigEndian.PutUint32(ctrString[:], ctr)
		// hash_string = Hash(suite || 0x01 || PK_string || alpha || ctr_string || 0x00)
		h.Reset()
		h.Write(v.suite)
		h.Write([]byte{hashToCurveMarker})
		h.Write(pkString)
		h.Write(alpha)
		h.Write(ctrString[:])
		h.Write([]byte{hashToCurveTerminator})
		hashString := h.Sum(nil)

		if H, ok := stringToPoint(hashString); ok {
			initMetrics()
			hashToCurveAttempts.Observe(float64(ctr + 1))
			glog.V(2).Infof("HashToCurve: found point after %d attempts", ctr+1)
			return H, ctr, nil
		}
	}
	glog.Warningf("HashToCurve: no point found after %d attempts", v.maxAttempts)
	return Point{}, 0, ErrHashToCurveExhausted
}

// stringToPoint interprets s as the x coordinate of a point and selects the
// point with even y. ok is false when s is not the encoding of a field
// element, or when x³ + ax + b has no square root.
// Specified in section 2.3.4 of SEC1 (https://www.secg.org/sec1-v2.pdf).
func stringToPoint(s []byte) (H Point, ok bool) {
	if bytes.Equal(s, infinityEncoding) {
		return Point{}, false
	}
	x, ok := decodeField(s)
	if !ok {
		return Point{}, false
	}
	p := params.P

	// t = x³ + ax + b (mod p)
	t := new(big.Int).Exp(x, big.NewInt(3), p)
	t.Add(t, new(big.Int).Mul(curveA, x))
	t.Add(t, curveB)
	t.Mod(t, p)

	// Euler's criterion: t is a non-residue iff t^((p-1)/2) = p-1.
	if new(big.Int).Exp(t, eulerExp, p).Cmp(pMinus1) == 0 {
		return Point{}, false
	}

	beta := new(big.Int).Exp(t, sqrtExp, p)
	y := beta
	if beta.Bit(0) == 1 {
		y = new(big.Int).Sub(p, beta)
	}
	H, err := NewPoint(x, y)
	if err != nil {
		return Point{}, false
	}
	return H, true
}
