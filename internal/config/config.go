package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses duration-valued variables
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints and durations
// for pool sizing and timeouts.
type Config struct {
	Port           string        // HTTP port to listen on
	DatabaseURL    string        // DSN of the MySQL store
	JWTSecret      string        // secret used to sign session tokens (may be empty, see Load)
	BcryptCost     int           // bcrypt cost for password hashing
	RabbitURL      string        // AMQP broker URL; empty disables event publishing
	MaxOpenConns   int           // upper bound on concurrent store connections
	MaxIdleConns   int           // idle connections kept in the pool
	AcquireTimeout time.Duration // bound on acquiring a connection / running a query
	ConnIdleTime   time.Duration // idle connection eviction threshold
	PingInterval   time.Duration // period of the background liveness probe
}

// Load reads configuration values from environment variables and returns a
// Config. Only the store DSN is strictly required; everything else falls
// back to a default. JWT_SECRET is deliberately not enforced here: the
// login handler reports its absence as a server-side configuration error,
// so the process still starts without it.
func Load() Config {
	return Config{
		Port:           getenv("APP_PORT", "8080"),
		DatabaseURL:    must("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		BcryptCost:     getenvInt("BCRYPT_COST", 10),
		RabbitURL:      os.Getenv("RABBITMQ_URL"),
		MaxOpenConns:   getenvInt("DB_MAX_OPEN_CONNS", 5),
		MaxIdleConns:   getenvInt("DB_MAX_IDLE_CONNS", 0),
		AcquireTimeout: getenvDuration("DB_ACQUIRE_TIMEOUT", 30*time.Second),
		ConnIdleTime:   getenvDuration("DB_CONN_IDLE_TIME", 10*time.Second),
		PingInterval:   getenvDuration("DB_PING_INTERVAL", time.Minute),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an optional environment variable, or the
// provided default when it is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv() but converts the value into an integer.
// A malformed value is a fatal configuration error.
func getenvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// getenvDuration is like getenv() but parses the value with
// time.ParseDuration (e.g. "30s", "1m").
func getenvDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, s)
	}
	return d
}
