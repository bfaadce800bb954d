package main

import (
	"github.com/mcoot/arcade-go/internal/cli"
)

func main() {
	cli.Execute()
}
