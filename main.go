package main

import (
	"fmt"
	"os"
)

// -------------------- MAIN --------------------

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
