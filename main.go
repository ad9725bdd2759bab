package main

import "github.com/naka-gawa/standup-digest/cmd"

func main() {
	cmd.Execute()
}
