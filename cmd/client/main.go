package main

import "nestlog/cmd/client/cmd"

func main() {
	cmd.Execute()
}
