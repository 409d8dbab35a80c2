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

// Package vrfserver serves VRF evaluation and verification over HTTP / JSON.
package vrfserver

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang/glog"
	"github.com/kr/pretty"
	"gocloud.dev/server/health"
	"golang.org/x/time/rate"

	"github.com/google/ecvrf/core/crypto/vrf"
	"github.com/google/ecvrf/core/crypto/vrf/k256"
)

// VerifierFactory builds a verifier for an encoded public key.
type VerifierFactory func(pk []byte) (vrf.PublicKey, error)

// K256Verifiers returns a VerifierFactory for secp256k1 public keys checked
// with v.
func K256Verifiers(v *k256.ECVRF) VerifierFactory {
	return func(pk []byte) (vrf.PublicKey, error) {
		p, err := k256.UnmarshalPoint(pk)
		if err != nil {
			return nil, err
		}
		return k256.NewVerifier(v, p)
	}
}

// marshaler is implemented by public keys with a canonical encoding.
type marshaler interface {
	Marshal() []byte
}

// Server holds a VRF key and answers prove and verify requests.
type Server struct {
	signer      vrf.PrivateKey
	self        vrf.PublicKey
	pk          []byte
	newVerifier VerifierFactory
	limiter     *rate.Limiter
}

// New returns a Server that proves with signer. Prove requests are admitted
// by limiter; a nil limiter admits everything.
func New(signer vrf.PrivateKey, newVerifier VerifierFactory, limiter *rate.Limiter) (*Server, error) {
	m, ok := signer.Public().(marshaler)
	if !ok {
		return nil, fmt.Errorf("public key %T has no encoding", signer.Public())
	}
	pk := m.Marshal()
	self, err := newVerifier(pk)
	if err != nil {
		return nil, fmt.Errorf("newVerifier(%x): %v", pk, err)
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 0)
	}
	return &Server{
		signer:      signer,
		self:        self,
		pk:          pk,
		newVerifier: newVerifier,
		limiter:     limiter,
	}, nil
}

// PublicKeyResponse is the body of GET /v1/publickey.
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// ProveRequest is the body of POST /v1/prove.
type ProveRequest struct {
	Input string `json:"input"`
}

// ProveResponse is the reply to POST /v1/prove.
type ProveResponse struct {
	Output    string `json:"output"`
	Proof     string `json:"proof"`
	PublicKey string `json:"public_key"`
	Hash      string `json:"hash"`
}

// VerifyRequest is the body of POST /v1/verify. An empty PublicKey selects
// the server's own key.
type VerifyRequest struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	Proof     string `json:"proof"`
	PublicKey string `json:"public_key,omitempty"`
}

// VerifyResponse is the reply to POST /v1/verify.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// Handler returns the HTTP routes of s.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/publickey", s.handlePublicKey)
	mux.HandleFunc("/v1/prove", s.handleProve)
	mux.HandleFunc("/v1/verify", s.handleVerify)
	return mux
}

// readinessInput is proved by CheckHealth.
var readinessInput = []byte("readyz")

// CheckHealth proves a fixed input and checks the proof against the server's
// own public key.
func (s *Server) CheckHealth() error {
	_, err := s.Prove(readinessInput)
	return err
}

func (s *Server) handlePublicKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, &PublicKeyResponse{PublicKey: hex.EncodeToString(s.pk)})
}

// Prove evaluates the VRF at input and checks the result against the
// server's own public key before releasing it.
func (s *Server) Prove(input []byte) (*ProveResponse, error) {
	output, proof, err := s.signer.Evaluate(input)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	index, err := s.self.ProofToHash(input, output, proof)
	if err != nil {
		return nil, fmt.Errorf("self check: %v", err)
	}
	return &ProveResponse{
		Output:    hex.EncodeToString(output),
		Proof:     hex.EncodeToString(proof),
		PublicKey: hex.EncodeToString(s.pk),
		Hash:      hex.EncodeToString(index[:]),
	}, nil
}

func (s *Server) handleProve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !s.limiter.Allow() {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
		return
	}
	var req ProveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	input, err := hex.DecodeString(req.Input)
	if err != nil {
		http.Error(w, fmt.Sprintf("input: %v", err), http.StatusBadRequest)
		return
	}
	resp, err := s.Prove(input)
	if err != nil {
		glog.Errorf("Prove(%x): %v", input, err)
		if errors.Is(err, k256.ErrHashToCurveExhausted) {
			http.Error(w, k256.ErrHashToCurveExhausted.Error(), http.StatusInternalServerError)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	glog.V(5).Infof("Prove(%x): %# v", input, pretty.Formatter(resp))
	writeJSON(w, resp)
}

// Verify reports whether req carries a valid proof. Malformed fields make
// the request invalid rather than an error.
func (s *Server) Verify(req *VerifyRequest) bool {
	fields := make([][]byte, 3)
	for i, f := range []string{req.Input, req.Output, req.Proof} {
		b, err := hex.DecodeString(f)
		if err != nil {
			glog.V(2).Infof("Verify: field %d: %v", i, err)
			return false
		}
		fields[i] = b
	}
	verifier := s.self
	if req.PublicKey != "" {
		pk, err := hex.DecodeString(req.PublicKey)
		if err != nil {
			glog.V(2).Infof("Verify: public key: %v", err)
			return false
		}
		if verifier, err = s.newVerifier(pk); err != nil {
			glog.V(2).Infof("Verify: public key: %v", err)
			return false
		}
	}
	return verifier.Verify(fields[0], fields[1], fields[2])
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("bad request: %v", err), http.StatusBadRequest)
		return
	}
	glog.V(5).Infof("Verify: %# v", pretty.Formatter(req))
	writeJSON(w, &VerifyResponse{Valid: s.Verify(&req)})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		glog.Errorf("json.Encode(): %v", err)
	}
}

var _ health.Checker = (*Server)(nil)
