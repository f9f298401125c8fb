package main

import (
	"github.com/rebelcraft/appenv/lib/cli"
)

func main() {
	cli.Execute()
}
