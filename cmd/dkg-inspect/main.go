package main

import (
	"github.com/onflow/wallet-dkg/cmd/dkg-inspect/cmd"
)

func main() {
	cmd.Execute()
}
