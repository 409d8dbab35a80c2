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

package serverutil

import (
	"crypto/tls"
	"net"

	"github.com/golang/glog"
)

// Listen binds to listenAddr. If certFile and keyFile are both set, the
// listener terminates TLS.
func Listen(listenAddr, certFile, keyFile string) (net.Listener, error) {
	var lis net.Listener
	var err error
	if certFile != "" && keyFile != "" {
		lis, err = listenTLS(listenAddr, certFile, keyFile)
	} else {
		glog.Warningf("Serving %v without TLS", listenAddr)
		lis, err = net.Listen("tcp", listenAddr)
	}
	if err != nil {
		return nil, err
	}
	glog.Infof("Listening on %v", lis.Addr())
	return lis, nil
}

func listenTLS(listenAddr, certFile, keyFile string) (net.Listener, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}
	config := &tls.Config{
		Certificates: []tls.Certificate{cert},
		NextProtos:   []string{"h2", "http/1.1"},
	}
	return tls.Listen("tcp", listenAddr, config)
}
