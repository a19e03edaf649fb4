package main

import "gallery-gen/cmd"

func main() {
	cmd.Execute()
}
