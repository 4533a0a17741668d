package main

import "github.com/idilsaglam/dailycheck/internal/cli"

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cli.Main(version)
}
