package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values. Every knob has a
// default so the binary runs with an empty environment; only the OpenAI
// key is required, and only by the interactive solver's client.
type Config struct {
	MazeWidth  int    // Board width in columns
	MazeHeight int    // Board height in rows
	MazeSeed   int64  // Carve seed; 0 means derive one from the clock
	Solver     string // Solver variant: bfs, dfs, astar or interactive
	TickDelay  time.Duration
	HTTPAddr   string // Viewer listen address; empty disables the viewer

	OpenAIKey      string        // API key for the interactive solver
	OpenAIModel    string        // Chat model name
	LLMRoundBudget int           // Reasoner rounds per tick
	LLMTimeout     time.Duration // Per reasoner call
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file when one exists.
func initConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:      getEnvAsIntWithDefault("MAZE_WIDTH", 15),
		MazeHeight:     getEnvAsIntWithDefault("MAZE_HEIGHT", 15),
		MazeSeed:       int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		Solver:         getEnvWithDefault("SOLVER", "bfs"),
		TickDelay:      time.Duration(getEnvAsIntWithDefault("TICK_DELAY_MS", 150)) * time.Millisecond,
		HTTPAddr:       getEnvWithDefault("HTTP_ADDR", ""),
		OpenAIKey:      getEnvWithDefault("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini"),
		LLMRoundBudget: getEnvAsIntWithDefault("LLM_ROUND_BUDGET", 12),
		LLMTimeout:     time.Duration(getEnvAsIntWithDefault("LLM_TIMEOUT_MS", 30000)) * time.Millisecond,
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an environment variable as an integer,
// logging a fatal error when the value is set but not a number.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
