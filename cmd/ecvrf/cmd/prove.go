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

	"github.com/spf13/cobra"
)

var proveHex bool

// proveCmd evaluates the VRF at an input.
var proveCmd = &cobra.Command{
	Use:   "prove [input]",
	Short: "Evaluate the VRF and print the output and proof",
	Long: `Evaluates the VRF with the private key in --key and prints the
output, the proof and the hash of the output, all hex encoded:

./ecvrf prove 999
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alpha, err := input(args[0], proveHex)
		if err != nil {
			return err
		}
		v, err := engine()
		if err != nil {
			return err
		}
		kp, err := readKeyPair()
		if err != nil {
			return err
		}
		r, err := v.Prove(alpha, kp)
		if err != nil {
			return err
		}
		pi, err := r.Proof.Marshal()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "output: %v\n", r.Output)
		fmt.Fprintf(w, "proof: %x\n", pi)
		fmt.Fprintf(w, "hash: %x\n", r.Proof.Hash())
		fmt.Fprintf(w, "public key: %v\n", r.PublicKey)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(proveCmd)
	proveCmd.Flags().BoolVar(&proveHex, "hex", false, "Input is hex encoded")
}
