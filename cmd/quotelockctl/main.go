package main

import (
	"quotelock/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cli.Execute()
}
