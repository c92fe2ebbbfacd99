package main

import "github.com/manoskary/partitura/cmd"

func main() {
	cmd.Execute()
}
