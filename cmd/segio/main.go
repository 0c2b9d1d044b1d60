package main

import (
	"github.com/arontsang/segio/cmd/segio/cmd"
)

func main() {
	cmd.Execute()
}
