package main

import (
	"github.com/NVIDIA/versioncheck/pkg/cli"
)

func main() {
	cli.Execute()
}
