package main

import "textlens/cmd"

func main() {
	cmd.Execute()
}
