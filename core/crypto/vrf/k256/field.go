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

import "math/big"

// decodeField interprets b as a big-endian integer and reports whether it is
// a field element, i.e. strictly less than the prime modulus p.
// Specified in section 2.3.6 of SEC1 (https://www.secg.org/sec1-v2.pdf).
func decodeField(b []byte) (*big.Int, bool) {
	x := new(big.Int).SetBytes(b)
	if x.Cmp(params.P) >= 0 {
		return nil, false
	}
	return x, true
}
