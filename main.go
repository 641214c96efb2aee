package main

import "go-toolfx/cmd/cli"

func main() {
	cli.Execute()
}
