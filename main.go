package main

import "github.com/an-lee/enjoy-transcript/cmd"

func main() {
	cmd.Execute()
}
