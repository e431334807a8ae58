package main

import "github.com/skishore/inkstone/cmd"

func main() {
	cmd.Execute()
}
