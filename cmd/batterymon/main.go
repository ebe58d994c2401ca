package main

import (
	"github.com/benmeehan/batterymon/internal/cli"
)

var version = "dev"

func main() {
	cli.Execute(version)
}
