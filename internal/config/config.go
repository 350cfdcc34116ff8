package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"strings" // strings splits list-valued variables
	"time"    // time provides duration types for timeouts
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and addresses, durations for
// timeouts.  There is deliberately no data model beyond this struct.
type Config struct {
	Env            string        // application environment (e.g. "dev", "prod")
	Port           string        // HTTP port to listen on
	ServiceName    string        // service name reported by /info and the logger
	ServiceVersion string        // service version reported by /info
	MongoURI       string        // MongoDB connection URI
	MongoDB        string        // MongoDB database name
	MongoTimeout   time.Duration // timeout for connect/ping against MongoDB
	LogLevel       string        // minimum log level (debug, info, warn, error)
	LogEncoding    string        // log encoding ("json" or "console")
	ReadTimeout    time.Duration // HTTP server read timeout
	WriteTimeout   time.Duration // HTTP server write timeout
	CORSOrigins    []string      // allowed CORS origins
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Optional variables
// fall back to defaults suitable for local development.
func Load() Config {
	return Config{
		Env:            must("APP_ENV"),   // environment (dev/test/prod)
		Port:           must("APP_PORT"),  // port to bind the HTTP server
		MongoURI:       must("MONGO_URI"), // MongoDB connection string
		MongoDB:        must("MONGO_DB"),  // MongoDB database name
		ServiceName:    envStr("SERVICE_NAME", "go-api-skeleton"),
		ServiceVersion: envStr("SERVICE_VERSION", "1.0.0"),
		MongoTimeout:   envDur("MONGO_TIMEOUT", 10*time.Second),
		LogLevel:       envStr("LOG_LEVEL", "info"),
		LogEncoding:    envStr("LOG_ENCODING", "json"),
		ReadTimeout:    envDur("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:   envDur("HTTP_WRITE_TIMEOUT", 30*time.Second),
		CORSOrigins:    envList("CORS_ORIGINS", []string{"*"}),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// envList reads a comma-separated environment variable into a string slice,
// trimming whitespace around each element.  Empty elements are dropped.
func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envStr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
		return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
		return false
	}
	return d
}

func envInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return d
}

func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	if dur, err := time.ParseDuration(v); err == nil {
		return dur
	}
	return d
}
