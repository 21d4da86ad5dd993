package main

import "github.com/usmanmehmood55/ingestipy/cmd"

func main() {
	cmd.Execute()
}
