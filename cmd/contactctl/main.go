package main

import "portfolio-backend/internal/cli"

func main() {
	cli.Execute()
}
