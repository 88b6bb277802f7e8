package main

import (
	"fmt"
	"os"

	"github.com/funvibe/funalg/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "funalg: "+err.Error())
		os.Exit(1)
	}
}
