package main

import "github.com/aalvaropc/pawsearch/internal/cli"

func main() {
	cli.Execute()
}
