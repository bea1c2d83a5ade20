package main

import "github.com/tomblah/auto-prompt-generator-sub000/internal/cli"

func main() {
	cli.Execute()
}
