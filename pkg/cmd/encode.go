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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [flags] element(s)",
	Short: "print the canonical encoding of field elements.",
	Long: `Parse each argument as a hex field element (with or without 0x prefix) and
	 print its canonical 32-byte big-endian encoding.  Values at or above the
	 field order are reduced first.`,
	Run: func(cmd *cobra.Command, args []string) {
		initLogging(cmd)
		//
		decimal := GetFlag(cmd, "decimal")
		elements := readElements(args)
		//
		log.Debugf("encoding %d field element(s)", len(elements))
		//
		for _, element := range elements {
			if decimal {
				fmt.Println(element.Text(10))
			} else {
				fmt.Printf("0x%x\n", element.Bytes())
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().BoolP("decimal", "d", false, "print values in decimal rather than hex")
}
