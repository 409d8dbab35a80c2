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

// Package serverutil provides helper functions to main.go files.
package serverutil

import (
	"context"
	"net"
	"net/http"

	"github.com/golang/glog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gocloud.dev/server/health"
)

// ServeHTTPAPI serves api on lis until ctx is done.
func ServeHTTPAPI(ctx context.Context, lis net.Listener, api http.Handler) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", health.HandleLive)
	mux.Handle("/", RootHealthHandler(api))
	return serve(ctx, &http.Server{Handler: mux}, func(s *http.Server) error { return s.Serve(lis) })
}

// ServeHTTPMetrics serves monitoring APIs until ctx is done. /readyz
// succeeds while every checker in ready passes.
func ServeHTTPMetrics(ctx context.Context, addr string, ready ...health.Checker) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", health.HandleLive)
	mux.Handle("/readyz", Readyz(ready...))
	mux.HandleFunc("/", health.HandleLive)

	glog.Infof("Hosting server status and metrics on %v", addr)
	return serve(ctx, &http.Server{Addr: addr, Handler: mux}, (*http.Server).ListenAndServe)
}

func serve(ctx context.Context, srv *http.Server, run func(*http.Server) error) error {
	errc := make(chan error, 1)
	go func() { errc <- run(srv) }()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			glog.Errorf("Shutdown(): %v", err)
		}
		<-errc
		return ctx.Err()
	}
}
