package main

import "github.com/transitops/cardledger/cmd/ledgerctl/cmd"

func main() {
	cmd.Execute()
}
