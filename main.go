package main

import "github.com/minsh/minsh/cmd"

func main() {
	cmd.Execute()
}
