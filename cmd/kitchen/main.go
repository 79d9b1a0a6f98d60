package main

import (
	"github.com/gliderkitchen/kitchen/pkg/cli"
)

func main() {
	cli.Execute()
}
