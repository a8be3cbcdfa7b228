package main

import "github.com/boguszjelinski/kern/cmd/kern/cmd"

func main() {
	cmd.Execute()
}
