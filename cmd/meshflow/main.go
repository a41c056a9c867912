package main

import "github.com/lukasried/meshflow/cmd"

func main() {
	cmd.Execute()
}
