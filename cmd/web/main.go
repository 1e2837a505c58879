package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"servimarket_backend/internal/app"
	"servimarket_backend/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	flag.Parse()

	// .env is optional; environment variables win over the yaml file.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", "error", err)
	}

	if *configPath != "" {
		os.Setenv("CONFIG_PATH", *configPath)
	}

	if err := app.Run(); err != nil {
		logger.Fatal("application failed", "error", err)
	}
}
