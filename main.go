package main

import "github.com/ridoystarlord/schemagen/cmd"

func main() {
	cmd.Execute()
}
