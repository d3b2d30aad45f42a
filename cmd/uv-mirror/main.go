package main

import "uv-mirror/internal/cli"

func main() {
	cli.Execute()
}
