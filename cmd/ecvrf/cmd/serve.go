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

package cmd

import (
	"context"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/google/trillian/monitoring/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/google/ecvrf/cmd/serverutil"
	"github.com/google/ecvrf/core/crypto/vrf/k256"
	"github.com/google/ecvrf/core/vrfserver"
)

// serveCmd serves the VRF over HTTP / JSON.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve VRF proofs over HTTP",
	Long: `Serves GET /v1/publickey, POST /v1/prove and POST /v1/verify with the
private key in --key, and Prometheus metrics, /healthz and /readyz on
--metrics-addr:

./ecvrf serve --addr=:8080 --metrics-addr=:8081 --prove-qps=100
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		v, err := engine(k256.WithMetricFactory(prometheus.MetricFactory{}))
		if err != nil {
			return err
		}
		kp, err := readKeyPair()
		if err != nil {
			return err
		}
		lim := limiter(viper.GetFloat64("prove-qps"), viper.GetInt("prove-burst"))
		srv, err := vrfserver.New(k256.NewSigner(v, kp), vrfserver.K256Verifiers(v), lim)
		if err != nil {
			return err
		}
		glog.Infof("Serving VRF public key %v", kp.Public())

		addr := viper.GetString("addr")
		lis, err := serverutil.Listen(addr, viper.GetString("tls-cert"), viper.GetString("tls-key"))
		if err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return serverutil.ServeHTTPMetrics(gctx, viper.GetString("metrics-addr"), srv) })
		g.Go(func() error { return serverutil.ServeHTTPAPI(gctx, lis, srv.Handler()) })
		err = g.Wait()
		if ctx.Err() != nil {
			glog.Infof("Server exiting: %v", err)
			return nil
		}
		return err
	},
}

// limiter returns the prove rate limiter, or nil for no limit. A burst of
// zero admits one second's worth of requests, rounded up.
func limiter(qps float64, burst int) *rate.Limiter {
	if qps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = int(math.Ceil(qps))
	}
	return rate.NewLimiter(rate.Limit(qps), burst)
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8080", "The ip:port combination to listen on")
	serveCmd.Flags().String("metrics-addr", ":8081", "The ip:port to publish metrics on")
	serveCmd.Flags().Float64("prove-qps", 0, "Maximum prove requests per second, 0 for no limit")
	serveCmd.Flags().Int("prove-burst", 0, "Maximum prove request burst, 0 for ceil(prove-qps)")
	serveCmd.Flags().String("tls-cert", "", "TLS cert file")
	serveCmd.Flags().String("tls-key", "", "TLS private key file")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		glog.Exitf("%v", err)
	}
}
