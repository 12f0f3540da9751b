package main

import (
	"fmt"
	"os"

	"github.com/ezsaad07/earnpro-frontend/internal/earnpro/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
