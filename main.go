package main

import (
	"sampan/cli"
)

func main() {
	cli.Start()
}
