package main

import (
	"github.com/jorge-borbinha/ReadPhantom/cli"
)

func main() {
	cli.Run()
}
