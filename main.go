package main

import "github.com/grigouze/gandi.cli/cmd"

func main() {
	cmd.Execute()
}
