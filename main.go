package main

import "github.com/chriserin/stepfind/cmd"

func main() {
	cmd.Execute()
}
