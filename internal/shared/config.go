package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv       string
	HTTPAddr     string
	MetricsAddr  string
	MySQLDSN     string
	RedisAddr    string
	RedisDB      int
	RedisPass    string
	SectionLimit int
	WarmWorkers  int
	RateRPS      int
	RateBurst    int
	CacheTTL     time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ":9100"),
		MySQLDSN:     env("MYSQL_DSN", ""),
		RedisAddr:    env("REDIS_ADDR", "localhost:6379"),
		RedisPass:    env("REDIS_PASSWORD", ""),
		RedisDB:      atoi("REDIS_DB", 0),
		SectionLimit: atoi("SECTION_LIMIT", 8),
		WarmWorkers:  atoi("WARM_WORKERS", 8),
		RateRPS:      atoi("RATE_RPS", 50),
		RateBurst:    atoi("RATE_BURST", 100),
		CacheTTL:     time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if c.MySQLDSN == "" {
		log.Info().Msg("MYSQL_DSN is empty, user-state archive disabled")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
