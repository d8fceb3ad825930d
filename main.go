package main

import "social-auction/internal/cli"

func main() {
	cli.Execute()
}
