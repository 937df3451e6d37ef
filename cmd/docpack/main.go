package main

import "github.com/dgallion1/docpack/internal/cli"

func main() {
	cli.Execute()
}
