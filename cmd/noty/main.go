// Package main provides the noty CLI.
package main

import "github.com/mesh-intelligence/noty/internal/cli"

func main() {
	cli.Execute()
}
