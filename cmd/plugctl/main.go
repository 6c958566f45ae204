package main

import "github.com/nerrad567/plugctl/internal/cli"

// version can be set during build with -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
