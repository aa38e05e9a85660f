package field

import (
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field/bigmod"
	"github.com/yugocabrio/go-soroban-ultrahonk/pkg/util/field/bn254"
)

func init() {
	// make sure the interface is adhered to.
	_ = Element[bn254.Element](bn254.Element{})
	_ = Element[bigmod.Element](bigmod.Element{})
}
