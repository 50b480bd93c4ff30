package config

import (
	"os"
	"strconv"
	"time"
)

// RateLimitConfig tunes the in-process token bucket applied to every
// request. The service is a single process, so no distributed store is
// involved; visitor buckets are kept in memory and expire after
// ExpiresIn of inactivity.
type RateLimitConfig struct {
	Enabled   bool
	Rate      float64       // tokens added per second
	Burst     int           // bucket capacity
	ExpiresIn time.Duration // idle time before a visitor bucket is dropped
}

func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:   envBool("RATE_LIMIT_ENABLED", true),
		Rate:      envFloat("RATE_LIMIT_RATE", 20),
		Burst:     envInt("RATE_LIMIT_BURST", 60),
		ExpiresIn: envDur("RATE_LIMIT_TTL", 10*time.Minute),
	}
	if cfg.Rate <= 0 { cfg.Rate = 1 }
	if cfg.Burst < 1 { cfg.Burst = 1 }
	if cfg.ExpiresIn <= 0 { cfg.ExpiresIn = time.Minute }
	return cfg
}

func envBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" { return d }
	switch v {
	case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON": return true
	case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF": return false
	}
	return d
}
func envInt(k string, d int) int {
	v := os.Getenv(k); if v == "" { return d }
	if n, err := strconv.Atoi(v); err == nil { return n }
	return d
}
func envFloat(k string, d float64) float64 {
	v := os.Getenv(k); if v == "" { return d }
	if f, err := strconv.ParseFloat(v, 64); err == nil { return f }
	return d
}
func envDur(k string, d time.Duration) time.Duration {
	v := os.Getenv(k); if v == "" { return d }
	if dur, err := time.ParseDuration(v); err == nil { return dur }
	return d
}
