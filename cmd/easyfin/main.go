package main

import "easyfin/internal/cli"

func main() {
	cli.Execute()
}
