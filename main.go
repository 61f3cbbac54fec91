package main

import "github.com/JOSIAHTHEPROGRAMMER/Joke-Repo/internal/cmd"

func main() {
	cmd.Execute()
}
