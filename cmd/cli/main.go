// Package main is the entry point for the shop CLI binary.
package main

import (
	"os"

	cli "shop-demo/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
