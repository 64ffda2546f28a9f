package main

import (
	"fmt"
	"os"

	"github.com/abdidvp/fixspot/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fixspot:", err)
		os.Exit(1)
	}
}
