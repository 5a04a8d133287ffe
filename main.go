package main

import "github.com/jfrkit/heapchart/cmd"

func main() {
	cmd.Execute()
}
