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
	"sync"

	"github.com/google/trillian/monitoring"
)

const resultLabel = "result"

var (
	once                sync.Once
	proofCount          monitoring.Counter
	verifyCount         monitoring.Counter
	hashToCurveAttempts monitoring.Histogram
)

func createMetrics(mf monitoring.MetricFactory) {
	proofCount = mf.NewCounter(
		"ecvrf_proofs",
		"Number of VRF proofs produced since process start")
	verifyCount = mf.NewCounter(
		"ecvrf_verifications",
		"Number of VRF proofs checked since process start, by result",
		resultLabel)
	hashToCurveAttempts = mf.NewHistogram(
		"ecvrf_hash_to_curve_attempts",
		"Number of try-and-increment attempts needed to hash an input to the curve")
}

// initMetrics creates inert metrics unless a factory was already installed.
func initMetrics() {
	once.Do(func() { createMetrics(monitoring.InertMetricFactory{}) })
}

func verifyResult(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
