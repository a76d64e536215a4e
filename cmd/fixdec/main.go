package main

import "github.com/fixdec/fixdec/internal/cli"

func main() {
	cli.Execute()
}
