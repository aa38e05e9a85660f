package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field"
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field/bn254"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level from the persistent verbosity flag.
func initLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse each argument as a hex-encoded field element, exiting with an error
// for the first argument which does not decode.  Malformed input is expected
// (this tool fronts untrusted proof data), hence a clean exit rather than a
// panic.
func readElements(args []string) []bn254.Element {
	elements := make([]bn254.Element, len(args))
	//
	for i, arg := range args {
		element, err := field.FromHex[bn254.Element](arg)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		elements[i] = element
	}
	//
	return elements
}
