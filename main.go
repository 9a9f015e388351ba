package main

import "github.com/brogergvhs/comicrev/cmd"

func main() {
	cmd.Execute()
}
