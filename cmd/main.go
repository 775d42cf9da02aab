package main

import (
	"github.com/consensys/go-montgomery/pkg/cmd"
)

func main() {
	cmd.Execute()
}
