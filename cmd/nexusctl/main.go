package main

import "github.com/nexus-ai/nexus-go/internal/cli"

func main() {
	cli.Execute()
}
