package main

import (
	"github.com/joho/godotenv"

	"docqa/internal/cli"
)

func main() {
	_ = godotenv.Load()

	cli.Execute()
}
