package main

import "github.com/julienpequegnot/newsterms/cmd"

func main() {
	cmd.Execute()
}
