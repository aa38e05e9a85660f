package main

import (
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/cmd"
)

func main() {
	cmd.Execute()
}
