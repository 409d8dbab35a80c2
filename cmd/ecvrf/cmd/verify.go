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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/google/ecvrf/core/crypto/vrf/k256"
)

var verifyHex bool

// errInvalid makes the command exit non-zero for a rejected proof.
var errInvalid = errors.New("invalid VRF proof")

// verifyCmd checks a proof against the public key in --pubkey.
var verifyCmd = &cobra.Command{
	Use:   "verify [input] [output] [proof]",
	Short: "Verify a VRF output and proof",
	Long: `Checks a hex encoded output and proof, as printed by prove, against
the public key in --pubkey:

./ecvrf verify 999 02ab... 02ab...
`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		alpha, err := input(args[0], verifyHex)
		if err != nil {
			return err
		}
		v, err := engine()
		if err != nil {
			return err
		}
		pk, err := readPublicKey()
		if err != nil {
			return err
		}
		verifier, err := k256.NewVerifier(v, pk)
		if err != nil {
			return err
		}
		output, err := hex.DecodeString(args[1])
		if err != nil {
			return fmt.Errorf("output: %v", err)
		}
		proof, err := hex.DecodeString(args[2])
		if err != nil {
			return fmt.Errorf("proof: %v", err)
		}
		index, err := verifier.ProofToHash(alpha, output, proof)
		if err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			return errInvalid
		}
		fmt.Fprintf(cmd.OutOrStdout(), "valid\nhash: %x\n", index)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().BoolVar(&verifyHex, "hex", false, "Input is hex encoded")
}
