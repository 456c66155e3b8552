package utils

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnv pulls a local .env into the environment; missing files are
// fine, the CLI then relies on the real environment.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}
