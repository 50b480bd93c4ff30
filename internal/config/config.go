package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The operator credentials configure the
// single account allowed to authenticate; the password is hashed at
// startup and never kept in plain form past main.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	JWTSecret        string // secret used to sign JWTs
	AccessTTLMin     int    // access token time-to-live in minutes
	BcryptCost       int    // bcrypt cost for password hashing
	OperatorEmail    string // email of the single operator account
	OperatorPassword string // operator password, hashed at startup
	AMQPURL          string // RabbitMQ URL; empty disables event publishing
	ConsumerEnabled  bool   // start the reservation log consumer
}

// Load reads configuration values from environment variables and
// returns a Config. Required variables are enforced by must() and
// missing values cause the program to exit with a fatal log message.
func Load() Config {
	return Config{
		Env:              must("APP_ENV"),                 // environment (dev/test/prod)
		Port:             must("APP_PORT"),                // port to bind the HTTP server
		JWTSecret:        must("JWT_SECRET"),              // secret used for signing JWTs
		AccessTTLMin:     mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
		BcryptCost:       mustInt("BCRYPT_COST"),          // bcrypt cost factor
		OperatorEmail:    must("OPERATOR_EMAIL"),          // operator login email
		OperatorPassword: must("OPERATOR_PASSWORD"),       // operator login password
		AMQPURL:          amqpURL(),                       // broker URL (optional)
		ConsumerEnabled:  envBool("QUEUE_CONSUMER_ENABLED", false),
	}
}

// amqpURL resolves the broker URL from RABBITMQ_URL with AMQP_URL as a
// fallback. An empty result disables publishing.
func amqpURL() string {
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		return v
	}
	return os.Getenv("AMQP_URL")
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

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
