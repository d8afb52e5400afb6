package main

import (
	"github.com/joho/godotenv"

	"github.com/taxops/perdcomp/cmd/perdcomp/commands"
)

func main() {
	// Optional .env with the Gemini project settings.
	_ = godotenv.Load()

	commands.Execute()
}
