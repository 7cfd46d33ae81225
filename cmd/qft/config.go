// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/qft/internal/logger"
)

// Environment variables read at start-up. A .env file in the working
// directory is loaded first when present; real environment variables win.
const (
	envLogLevel  = "QFT_LOG_LEVEL"
	envLogPretty = "QFT_LOG_PRETTY"
)

// loadConfig resolves logger settings from the environment.
func loadConfig() logger.Config {
	_ = godotenv.Load()

	return logger.Config{
		Level:  getEnv(envLogLevel, "info"),
		Pretty: getEnvAsBool(envLogPretty, false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}

	return defaultValue
}
