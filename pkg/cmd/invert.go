// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field"
)

var invertCmd = &cobra.Command{
	Use:   "invert [flags] element(s)",
	Short: "batch-invert field elements.",
	Long: `Compute the multiplicative inverse of every given element using a single
	 field inversion (Montgomery's trick).  The whole batch fails if any
	 element is zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		elements := readElements(args)
		//
		log.Debugf("batch-inverting %d field element(s)", len(elements))
		//
		inverses, err := field.BatchInverse(elements)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Pair input and inverse when writing to a terminal; keep the output
		// machine-readable otherwise.
		interactive := term.IsTerminal(int(os.Stdout.Fd()))
		//
		for i, inverse := range inverses {
			if interactive {
				fmt.Printf("%s => 0x%x\n", args[i], inverse.Bytes())
			} else {
				fmt.Printf("0x%x\n", inverse.Bytes())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(invertCmd)
}
