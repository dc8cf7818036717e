package main

import "github.com/oakhall/teambot/internal/cli"

func main() {
	cli.Execute()
}
