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
	"math/big"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field"
)

var powCmd = &cobra.Command{
	Use:   "pow [flags] element exponent",
	Short: "raise a field element to a given power.",
	Long: `Raise a hex field element to a non-negative integer exponent (decimal, or
	 hex with 0x prefix).  The exponent may be arbitrarily wide; it is never
	 truncated to a machine word.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		base := readElements(args[:1])[0]
		//
		exponent, ok := new(big.Int).SetString(args[1], 0)
		if !ok || exponent.Sign() < 0 {
			fmt.Printf("invalid exponent %q\n", args[1])
			os.Exit(2)
		}
		//
		log.Debugf("raising %s to a %d-bit exponent", args[0], exponent.BitLen())
		//
		fmt.Printf("0x%x\n", field.PowBig(base, exponent).Bytes())
	},
}

func init() {
	rootCmd.AddCommand(powCmd)
}
