package main

import (
	"os"

	"github.com/Victor-armando18/checkout-functions/cmd/function/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
