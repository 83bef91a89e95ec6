package main

import "marvel-metadata/cmd"

func main() {
	cmd.Execute()
}
