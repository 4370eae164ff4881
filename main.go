package main

import "github.com/user/stratkit/cmd"

func main() {
	cmd.Execute()
}
