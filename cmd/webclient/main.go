package main

import (
	"fmt"
	"os"

	webclient "github.com/gleb-zvonkov/web-client"
)

func main() {
	if err := webclient.Main(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
