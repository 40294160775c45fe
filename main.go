package main

import "go.coldcutz.net/todo/cmd"

func main() {
	cmd.Execute()
}
