package main

import (
	"github.com/davejbax/go-baseconv/internal/cli"
	"os"
)

func main() {
	command := cli.NewCmdConvert()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
