package main

import "github.com/jmswanson/walletvault/cmd/walletvault/cmd"

func main() {
	cmd.Execute()
}
