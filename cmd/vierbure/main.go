package main

import "github.com/mcoot/vierbure/internal/cli"

func main() {
	cli.Execute()
}
