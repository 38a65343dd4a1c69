// Package config reads the cabinet settings from the environment and an optional .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/plus3/dotris/highscore"
)

type Config struct {
	TicksPerSecond int
	MaxPlayers     int

	HighscoreBackend string
	HighscorePath    string
	RedisURL         string
	RedisPassword    string
	RedisKey         string
	DatabaseURL      string

	PreviewAddr string
	Sound       bool
	DebugUI     bool
	Buttons     string
}

// LoadDotEnv loads .env from the working directory or its parent. A missing file is
// only logged.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}
}

func Load() *Config {
	return &Config{
		TicksPerSecond: GetEnvAsInt("DOTRIS_TPS", 60),
		MaxPlayers:     GetEnvAsInt("DOTRIS_MAX_PLAYERS", 2),

		HighscoreBackend: strings.ToLower(GetEnv("DOTRIS_HIGHSCORE_BACKEND", "file")),
		HighscorePath:    GetEnv("DOTRIS_HIGHSCORE_PATH", highscore.DefaultPath),
		RedisURL:         GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:    GetEnv("REDIS_PASSWORD", ""),
		RedisKey:         GetEnv("DOTRIS_REDIS_KEY", highscore.DefaultRedisKey),
		DatabaseURL:      GetEnv("DATABASE_URL", ""),

		PreviewAddr: GetEnv("DOTRIS_PREVIEW_ADDR", ""),
		Sound:       GetEnvAsBool("DOTRIS_SOUND", true),
		DebugUI:     GetEnvAsBool("DOTRIS_DEBUG_UI", false),
		Buttons:     GetEnv("DOTRIS_BUTTONS", ""),
	}
}

// TickInterval converts TicksPerSecond to the scheduler interval.
func (c *Config) TickInterval() time.Duration {
	tps := c.TicksPerSecond
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

func (c *Config) Highscore() highscore.Options {
	return highscore.Options{
		Backend:       c.HighscoreBackend,
		Path:          c.HighscorePath,
		RedisAddr:     c.RedisURL,
		RedisPassword: c.RedisPassword,
		RedisKey:      c.RedisKey,
		DatabaseURL:   c.DatabaseURL,
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer for %s: %q, using %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean for %s: %q, using %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
