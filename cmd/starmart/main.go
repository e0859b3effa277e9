// cmd/starmart/main.go
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/meridian-data/starmart/cmd/starmart/cli"
)

func main() {
	// A .env file is optional; environment variables win when both are set.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
		}
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
