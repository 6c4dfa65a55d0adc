package main

import (
	"fmt"
	"os"

	"github.com/mikelcalvo/invoice-cli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%sError: %s%s\n", cli.Red, err, cli.Reset)
		os.Exit(1)
	}
}
