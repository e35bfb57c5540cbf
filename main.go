package main

import "github.com/becurrie/workday/cmd"

func main() {
	cmd.Execute()
}
