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

// Package cmd implements the ecvrf subcommands.
package cmd

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/google/ecvrf/core/crypto/vrf/k256"
)

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ecvrf",
	Short: "A verifiable random function over secp256k1",
	Long: `ecvrf evaluates a verifiable random function over secp256k1.

The holder of a secret key derives a pseudorandom output for any input
together with a proof. Anyone holding the public key can check that the
output was computed correctly without learning the secret key.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer glog.Flush()
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ecvrf.yaml)")

	RootCmd.PersistentFlags().String("suite", hex.EncodeToString(k256.DefaultSuite), "Hex encoded domain separation tag")
	RootCmd.PersistentFlags().Uint32("max-attempts", k256.DefaultMaxAttempts, "Maximum number of hash to curve attempts")
	RootCmd.PersistentFlags().String("key", "genfiles/vrf-key.pem", "Path to VRF private key")
	RootCmd.PersistentFlags().String("pubkey", "genfiles/vrf-pubkey.pem", "Path to VRF public key")
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		glog.Exitf("%v", err)
	}

	// glog registers its flags on the standard flag set.
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
}

// initConfig reads in config file and ENV variables if set.
// initConfig is run during a command's preRun().
func initConfig() {
	viper.SetEnvPrefix("ecvrf")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match.

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			glog.Exitf("Failed reading config file: %v: %v", viper.ConfigFileUsed(), err)
		}
	} else {
		viper.SetConfigName(".ecvrf")
		viper.AddConfigPath("$HOME")
		if err := viper.ReadInConfig(); err == nil {
			glog.Infof("Using config file: %v", viper.ConfigFileUsed())
		}
	}
}

// engine returns an ECVRF configured from flags and config, then opts.
func engine(opts ...k256.Option) (*k256.ECVRF, error) {
	suite, err := hex.DecodeString(viper.GetString("suite"))
	if err != nil {
		return nil, fmt.Errorf("--suite: %v", err)
	}
	return k256.New(append([]k256.Option{
		k256.WithSuite(suite),
		k256.WithMaxAttempts(viper.GetUint32("max-attempts")),
	}, opts...)...), nil
}

func readKeyPair() (*k256.KeyPair, error) {
	path := viper.GetString("key")
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading VRF private key: %v", err)
	}
	kp, err := k256.KeyPairFromPEM(b)
	if err != nil {
		return nil, fmt.Errorf("parsing VRF private key %v: %v", path, err)
	}
	return kp, nil
}

func readPublicKey() (k256.Point, error) {
	path := viper.GetString("pubkey")
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return k256.Point{}, fmt.Errorf("reading VRF public key: %v", err)
	}
	pk, err := k256.PublicKeyFromPEM(b)
	if err != nil {
		return k256.Point{}, fmt.Errorf("parsing VRF public key %v: %v", path, err)
	}
	return pk, nil
}

// input decodes a command line input, which is hex if asHex is set and raw
// bytes otherwise.
func input(arg string, asHex bool) ([]byte, error) {
	if !asHex {
		return []byte(arg), nil
	}
	b, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("input: %v", err)
	}
	return b, nil
}
