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

package vrfserver

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/time/rate"

	"github.com/google/ecvrf/core/crypto/vrf"
	"github.com/google/ecvrf/core/crypto/vrf/k256"
	"github.com/google/ecvrf/core/crypto/vrf/vrfmock"
)

type env struct {
	v   *k256.ECVRF
	kp  *k256.KeyPair
	srv *Server
	ts  *httptest.Server
}

func newEnv(t *testing.T, limiter *rate.Limiter) *env {
	t.Helper()
	v := k256.New()
	kp, err := v.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey(): %v", err)
	}
	srv, err := New(k256.NewSigner(v, kp), K256Verifiers(v), limiter)
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return &env{v: v, kp: kp, srv: srv, ts: ts}
}

func (e *env) post(t *testing.T, path string, body interface{}) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.Post(e.ts.URL+path, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %v: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("json.Decode(): %v", err)
	}
}

func TestPublicKey(t *testing.T) {
	e := newEnv(t, nil)
	resp, err := http.Get(e.ts.URL + "/v1/publickey")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if got, want := resp.StatusCode, http.StatusOK; got != want {
		t.Fatalf("status: %v, want %v", got, want)
	}
	var got PublicKeyResponse
	decode(t, resp, &got)
	want := PublicKeyResponse{PublicKey: hex.EncodeToString(e.kp.Public().Marshal())}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("publickey (-got +want):\n%s", diff)
	}
}

func TestProveVerify(t *testing.T) {
	e := newEnv(t, nil)
	input := hex.EncodeToString([]byte("999"))

	resp := e.post(t, "/v1/prove", &ProveRequest{Input: input})
	if got, want := resp.StatusCode, http.StatusOK; got != want {
		t.Fatalf("prove status: %v, want %v", got, want)
	}
	var proved ProveResponse
	decode(t, resp, &proved)

	again := e.post(t, "/v1/prove", &ProveRequest{Input: input})
	var proved2 ProveResponse
	decode(t, again, &proved2)
	if proved.Output != proved2.Output || proved.Hash != proved2.Hash {
		t.Errorf("prove is not deterministic in output: %+v, %+v", proved, proved2)
	}

	wrongInput := hex.EncodeToString([]byte("998"))
	other, err := e.v.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	otherPK := hex.EncodeToString(other.Public().Marshal())

	for _, tc := range []struct {
		desc string
		req  VerifyRequest
		want bool
	}{
		{desc: "own key", req: VerifyRequest{Input: input, Output: proved.Output, Proof: proved.Proof}, want: true},
		{desc: "explicit key", req: VerifyRequest{Input: input, Output: proved.Output, Proof: proved.Proof, PublicKey: proved.PublicKey}, want: true},
		{desc: "wrong input", req: VerifyRequest{Input: wrongInput, Output: proved.Output, Proof: proved.Proof}},
		{desc: "wrong key", req: VerifyRequest{Input: input, Output: proved.Output, Proof: proved.Proof, PublicKey: otherPK}},
		{desc: "bad hex", req: VerifyRequest{Input: "zz", Output: proved.Output, Proof: proved.Proof}},
		{desc: "bad key", req: VerifyRequest{Input: input, Output: proved.Output, Proof: proved.Proof, PublicKey: "00"}},
		{desc: "truncated proof", req: VerifyRequest{Input: input, Output: proved.Output, Proof: proved.Proof[:10]}},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			resp := e.post(t, "/v1/verify", &tc.req)
			if got, want := resp.StatusCode, http.StatusOK; got != want {
				t.Fatalf("verify status: %v, want %v", got, want)
			}
			var got VerifyResponse
			decode(t, resp, &got)
			if got.Valid != tc.want {
				t.Errorf("valid: %v, want %v", got.Valid, tc.want)
			}
		})
	}
}

func TestProveBadRequest(t *testing.T) {
	e := newEnv(t, nil)
	for _, tc := range []struct {
		desc string
		body string
	}{
		{desc: "bad json", body: "{"},
		{desc: "bad hex", body: `{"input": "xyz"}`},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			resp, err := http.Post(e.ts.URL+"/v1/prove", "application/json", strings.NewReader(tc.body))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if got, want := resp.StatusCode, http.StatusBadRequest; got != want {
				t.Errorf("status: %v, want %v", got, want)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	e := newEnv(t, nil)
	for _, path := range []string{"/v1/prove", "/v1/verify"} {
		resp, err := http.Get(e.ts.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if got, want := resp.StatusCode, http.StatusMethodNotAllowed; got != want {
			t.Errorf("GET %v: %v, want %v", path, got, want)
		}
	}
}

func TestProveRateLimited(t *testing.T) {
	e := newEnv(t, rate.NewLimiter(rate.Limit(0.001), 1))
	req := &ProveRequest{Input: "00"}
	if got, want := e.post(t, "/v1/prove", req).StatusCode, http.StatusOK; got != want {
		t.Fatalf("first prove: %v, want %v", got, want)
	}
	if got, want := e.post(t, "/v1/prove", req).StatusCode, http.StatusTooManyRequests; got != want {
		t.Errorf("second prove: %v, want %v", got, want)
	}
}

func TestCheckHealth(t *testing.T) {
	e := newEnv(t, nil)
	if err := e.srv.CheckHealth(); err != nil {
		t.Errorf("CheckHealth(): %v", err)
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	signer := vrfmock.NewMockPrivateKey(ctrl)
	signer.EXPECT().Public().Return(e.kp.Public()).AnyTimes()
	signer.EXPECT().Evaluate(readinessInput).Return(nil, nil, errors.New("key unavailable"))
	srv, err := New(signer, K256Verifiers(e.v), nil)
	if err != nil {
		t.Fatalf("New(): %v", err)
	}
	if err := srv.CheckHealth(); err == nil {
		t.Errorf("CheckHealth(): nil, want error")
	}
}

func TestProveErrors(t *testing.T) {
	v := k256.New()
	kp, err := v.GenerateKey()
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct {
		desc     string
		evalErr  error
		checkErr error
	}{
		{desc: "evaluate fails", evalErr: errors.New("hsm offline")},
		{desc: "hash to curve exhausted", evalErr: k256.ErrHashToCurveExhausted},
		{desc: "self check fails", checkErr: k256.ErrInvalidProof},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			signer := vrfmock.NewMockPrivateKey(ctrl)
			self := vrfmock.NewMockPublicKey(ctrl)

			signer.EXPECT().Public().Return(kp.Public()).AnyTimes()
			signer.EXPECT().Evaluate([]byte("999")).Return([]byte{1}, []byte{2}, tc.evalErr)
			if tc.evalErr == nil {
				self.EXPECT().ProofToHash([]byte("999"), []byte{1}, []byte{2}).Return([32]byte{}, tc.checkErr)
			}

			srv, err := New(signer, func([]byte) (vrf.PublicKey, error) { return self, nil }, nil)
			if err != nil {
				t.Fatalf("New(): %v", err)
			}
			if _, err := srv.Prove([]byte("999")); err == nil {
				t.Errorf("Prove(): nil, want error")
			}

			ts := httptest.NewServer(srv.Handler())
			defer ts.Close()
			e := &env{ts: ts}
			signer.EXPECT().Evaluate([]byte("999")).Return([]byte{1}, []byte{2}, tc.evalErr)
			if tc.evalErr == nil {
				self.EXPECT().ProofToHash([]byte("999"), []byte{1}, []byte{2}).Return([32]byte{}, tc.checkErr)
			}
			resp := e.post(t, "/v1/prove", &ProveRequest{Input: hex.EncodeToString([]byte("999"))})
			if got, want := resp.StatusCode, http.StatusInternalServerError; got != want {
				t.Errorf("status: %v, want %v", got, want)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	signer := vrfmock.NewMockPrivateKey(ctrl)
	signer.EXPECT().Public().Return("not a point").AnyTimes()
	if _, err := New(signer, K256Verifiers(k256.New()), nil); err == nil {
		t.Errorf("New(unencodable key): nil, want error")
	}

	infinity := vrfmock.NewMockPrivateKey(ctrl)
	infinity.EXPECT().Public().Return(k256.Infinity()).AnyTimes()
	if _, err := New(infinity, K256Verifiers(k256.New()), nil); err == nil {
		t.Errorf("New(infinity): nil, want error")
	}
}
