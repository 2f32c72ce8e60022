package main

import "github.com/notargets/gonozzle/cmd"

func main() {
	cmd.Execute()
}
