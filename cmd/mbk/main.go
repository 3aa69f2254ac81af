package main

import (
	"os"

	"github.com/msto63/mBK/cmd/mbk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
