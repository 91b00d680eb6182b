package config

import (
	"log"
	"os"
	"strconv"
)

// Config carries the runtime settings shared by the API server and the CLI.
// Extension knobs are defaults; API callers can override them per request.
type Config struct {
	RedisURL string
	MySQLDSN string
	Port     string

	ExtensionSeconds   int64
	ThresholdProximity float64
	TimeProximity      float64
	MaxExtension       int64
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func getint(key string, def int64) int64 {
	v, err := strconv.ParseInt(getenv(key, strconv.FormatInt(def, 10)), 10, 64)
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func getfloat(key string, def float64) float64 {
	v, err := strconv.ParseFloat(getenv(key, strconv.FormatFloat(def, 'f', -1, 64)), 64)
	if err != nil {
		log.Fatalf("env %s: %v", key, err)
	}
	return v
}

func Load() Config {
	return Config{
		RedisURL:           getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		MySQLDSN:           getenv("MYSQL_DSN", "verdyce:verdyce@tcp(127.0.0.1:3306)/verdyce"),
		Port:               getenv("PORT", "8080"),
		ExtensionSeconds:   getint("EXTENSION_SECONDS", 30),
		ThresholdProximity: getfloat("THRESHOLD_PROXIMITY", 0.9),
		TimeProximity:      getfloat("TIME_PROXIMITY", 0.9),
		MaxExtension:       getint("MAX_EXTENSION", 0),
	}
}
