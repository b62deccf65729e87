package main

import (
	"os"

	"github.com/yuchen/hana/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
