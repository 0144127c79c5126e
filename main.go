package main

import "github.com/ankitson/compbio/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
