package main

import "pipe-sizing-service/internal/adapters/primary/cli"

func main() {
	cli.Execute()
}
