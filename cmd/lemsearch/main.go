package main

import "lemsearch/internal/cli"

func main() {
	cli.Execute()
}
