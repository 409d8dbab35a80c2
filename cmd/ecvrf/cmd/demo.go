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

// demoCmd proves one input twice under a fresh key and verifies both proofs.
var demoCmd = &cobra.Command{
	Use:   "demo [input]",
	Short: "Prove an input twice with a fresh key and verify both proofs",
	Long: `Generates a throwaway key, proves the input twice and verifies both
proofs. The outputs match; the proofs differ because each uses a fresh nonce.

./ecvrf demo 999
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		alpha := []byte("999")
		if len(args) == 1 {
			alpha = []byte(args[0])
		}
		v, err := engine()
		if err != nil {
			return err
		}
		kp, err := v.GenerateKey()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "public key: %v\n", kp.Public())
		for i := 1; i <= 2; i++ {
			r, err := v.Prove(alpha, kp)
			if err != nil {
				return err
			}
			pi, err := r.Proof.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "proof %d:\n", i)
			fmt.Fprintf(w, "  output: %v\n", r.Output)
			fmt.Fprintf(w, "  proof: %x\n", pi)
			fmt.Fprintf(w, "  valid: %v\n", v.Verify(alpha, r.Output, r.Proof, r.PublicKey))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(demoCmd)
}
