package main

import "domain-finder/internal/cli"

func main() {
	cli.Execute()
}
