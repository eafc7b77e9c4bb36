package main

import "github.com/philipparndt/goroad/cmd"

func main() {
	cmd.Execute()
}
