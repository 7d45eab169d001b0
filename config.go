package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	ArtifactDir string
	LogLevel    string
}

func mustConfig() Config {
	// Optional .env for local runs; real deployments set the environment.
	_ = godotenv.Load()

	return Config{
		Port:        getenv("PORT", "8080"),
		ArtifactDir: getenv("ARTIFACT_DIR", "./artifacts"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
