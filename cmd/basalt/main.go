package main

import (
	"os"

	"github.com/BasaltDev/BasaltLang/cmd/basalt/cmd"
)

func main() {
	os.Args = cmd.NormalizeArgs(os.Args)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
