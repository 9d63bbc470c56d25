package main

import "github.com/glasshq/glass/cmd"

func main() {
	cmd.Execute()
}
