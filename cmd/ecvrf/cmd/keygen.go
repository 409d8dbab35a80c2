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
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/google/ecvrf/core/crypto/vrf/k256"
)

var overwrite bool

// keygenCmd writes a fresh key pair to --key and --pubkey.
var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a VRF key pair",
	Long: `Generates a secp256k1 VRF key pair and writes the private key to --key
and the public key to --pubkey, both PEM encoded:

./ecvrf keygen --key=genfiles/vrf-key.pem --pubkey=genfiles/vrf-pubkey.pem
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := engine()
		if err != nil {
			return err
		}
		kp, err := v.GenerateKey()
		if err != nil {
			return err
		}
		if err := writeFile(viper.GetString("key"), k256.MarshalPrivatePEM(kp), 0600); err != nil {
			return err
		}
		if err := writeFile(viper.GetString("pubkey"), k256.MarshalPublicPEM(kp.Public()), 0644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "public key: %v\n", kp.Public())
		return nil
	},
}

func writeFile(path string, data []byte, perm os.FileMode) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%v exists, use --overwrite to replace it", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, perm)
}

func init() {
	RootCmd.AddCommand(keygenCmd)
	keygenCmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace existing key files")
}
