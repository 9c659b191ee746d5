package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	CSVPath   string        // garbage dictionary source file
	DBPath    string        // quiz results database
	CacheTTL  time.Duration // dictionary snapshot freshness window
	StaticDir string        // optional frontend assets, empty disables
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":8000"),
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CSVPath:         getenvDefault("CSV_PATH", "services/hiraizumi_garbage_dic.csv"),
		DBPath:          getenvDefault("DB_PATH", "results.db"),
		CacheTTL:        getenvDuration("CACHE_TTL", 10*time.Minute),
		StaticDir:       os.Getenv("STATIC_DIR"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
